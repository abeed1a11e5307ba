// Package config holds the compiler's environment-derived knobs. None of
// them affect generated code; they only control how verbosely the
// compiler explains itself (spec.md's frame/emission rules are otherwise
// unconditional).
package config

import "github.com/caarlos0/env/v6"

// Options is populated via FromEnv. The zero value is a valid
// configuration: annotations off, default array-dimension bound.
type Options struct {
	// Annotate, when true, makes the code generator emit a "# <node kind>"
	// comment above each statement's assembly.
	Annotate bool `env:"QUACKCC_ANNOTATE" envDefault:"false"`

	// MaxArrayDims bounds the number of "[N]" suffixes a declarator may
	// carry (spec.md §4.3.5).
	MaxArrayDims int `env:"QUACKCC_MAX_ARRAY_DIMS" envDefault:"16"`
}

// FromEnv reads Options from the process environment, applying defaults
// for anything unset.
func FromEnv() (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

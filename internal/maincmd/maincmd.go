// Package maincmd wires the compiler's phases (tokenize, parse, decorate,
// generate) behind a single CLI entry point, following the shape of
// nenuphar's own internal/maincmd: a Cmd struct driven by
// github.com/mna/mainer, with SetArgs/SetFlags/Validate/Main methods.
package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/obscurecat64/quackcc/internal/config"
	"github.com/obscurecat64/quackcc/internal/diag"
	"github.com/obscurecat64/quackcc/lang/compiler"
	"github.com/obscurecat64/quackcc/lang/parser"
)

const binName = "quackcc"

var (
	shortUsage = fmt.Sprintf("usage: %s <source>\nRun '%[1]s --help' for details.\n", binName)

	longUsage = fmt.Sprintf(`usage: %s <source>
       %[1]s -h|--help
       %[1]s -v|--version

Compiles a single C-subset translation unit, given as one command-line
argument (not a file path), to AArch64/Darwin assembly on stdout.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

// Cmd is the compiler's entire CLI surface: exactly one positional
// argument, the source text itself (spec.md §6).
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
}

func (c *Cmd) SetArgs(args []string)      { c.args = args }
func (c *Cmd) SetFlags(_ map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) != 1 {
		return fmt.Errorf("expected exactly one argument (the source text), got %d", len(c.args))
	}
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	// A single-pass compiler has nothing meaningful to cancel mid-flight,
	// but the signal wiring is carried anyway as ambient CLI plumbing.
	_ = mainer.CancelOnSignal(context.Background(), os.Interrupt)

	return c.compile(stdio)
}

func (c *Cmd) compile(stdio mainer.Stdio) mainer.ExitCode {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid configuration: %s\n", err)
		return mainer.Failure
	}

	source := c.args[0]
	ctx := &diag.Context{Source: source, Out: stdio.Stderr}

	fns := parser.Parse(ctx, parser.Options{MaxArrayDims: cfg.MaxArrayDims})
	compiler.Generate(ctx, stdio.Stdout, cfg, fns)
	return mainer.Success
}

// Package diag implements the compiler's two fatal diagnostic primitives.
//
// Every phase of the compiler (scanner, parser, resolver, compiler) shares
// a single *Context so that error messages can always point back into the
// original source buffer. This replaces the original implementation's
// global current_input (see quackcc's design notes): the buffer is
// threaded explicitly instead of stashed in package state.
package diag

import (
	"fmt"
	"io"
	"os"
)

// Context carries the source buffer and the stream diagnostics are written
// to. The zero value writes to os.Stderr.
type Context struct {
	Source string
	Out    io.Writer

	// Exit is called after a diagnostic is written. It defaults to
	// os.Exit(1) and is only overridden in tests, which need to observe the
	// message without killing the test binary.
	Exit func(code int)
}

func (c *Context) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stderr
}

func (c *Context) exit(code int) {
	if c.Exit != nil {
		c.Exit(code)
		return
	}
	os.Exit(code)
}

// Errorf reports a generic fatal error with no source location and
// terminates. It never returns.
func (c *Context) Errorf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
	fmt.Fprintln(c.out())
	c.exit(1)
}

// ErrorAt reports a fatal error pointing at a byte offset into Source: the
// full source buffer, then a line of spaces up to pos, then "^ " and the
// message. It never returns.
func (c *Context) ErrorAt(pos int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out(), c.Source)
	fmt.Fprintf(c.out(), "%*s^ %s\n", pos, "", msg)
	c.exit(1)
}

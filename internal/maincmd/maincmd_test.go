package maincmd_test

import (
	"bytes"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/assert"

	"github.com/obscurecat64/quackcc/internal/maincmd"
)

// run calls Cmd.Main the way cmd/quackcc does with os.Args: the program
// name first, followed by args.
func run(args []string) (mainer.ExitCode, string, string) {
	var out, errOut bytes.Buffer
	c := &maincmd.Cmd{}
	code := c.Main(append([]string{"quackcc"}, args...), mainer.Stdio{Stdout: &out, Stderr: &errOut})
	return code, out.String(), errOut.String()
}

func TestCompilesSingleSourceArgument(t *testing.T) {
	code, out, _ := run([]string{"int main() { return 0; } "})
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, out, "_main:\n")
	assert.Contains(t, out, ".global _main\n")
}

func TestRejectsWrongArgumentCount(t *testing.T) {
	code, _, errOut := run([]string{})
	assert.Equal(t, mainer.InvalidArgs, code)
	assert.Contains(t, errOut, "invalid arguments")

	code, _, errOut = run([]string{"int f(){return 1;} ", "extra"})
	assert.Equal(t, mainer.InvalidArgs, code)
	assert.Contains(t, errOut, "invalid arguments")
}

func TestHelpFlag(t *testing.T) {
	code, out, _ := run([]string{"--help"})
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, out, "usage: quackcc")
}

func TestVersionFlag(t *testing.T) {
	c := &maincmd.Cmd{BuildVersion: "v1.2.3"}
	var out, errOut bytes.Buffer
	code := c.Main([]string{"quackcc", "--version"}, mainer.Stdio{Stdout: &out, Stderr: &errOut})
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, out.String(), "v1.2.3")
}

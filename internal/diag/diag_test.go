package diag_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/obscurecat64/quackcc/internal/diag"
)

func TestErrorfWritesMessageAndExits(t *testing.T) {
	var buf bytes.Buffer
	var code int
	ctx := &diag.Context{Out: &buf, Exit: func(c int) { code = c }}

	ctx.Errorf("bad thing: %d", 42)

	assert.Equal(t, "bad thing: 42\n", buf.String())
	assert.Equal(t, 1, code)
}

func TestErrorAtPointsAtOffset(t *testing.T) {
	var buf bytes.Buffer
	var code int
	ctx := &diag.Context{Source: "int x;", Out: &buf, Exit: func(c int) { code = c }}

	ctx.ErrorAt(4, "unexpected token")

	out := buf.String()
	assert.Contains(t, out, "int x;\n")
	assert.Contains(t, out, "^ unexpected token")
	assert.Equal(t, 1, code)
}

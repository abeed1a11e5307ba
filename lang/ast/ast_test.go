package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/obscurecat64/quackcc/lang/ast"
)

func TestWalkVisitsEveryDescendant(t *testing.T) {
	// (1 + 2) - 3
	add := ast.NewBinary(ast.ADD, ast.NewNum(1, nil), ast.NewNum(2, nil), nil)
	sub := ast.NewBinary(ast.SUB, add, ast.NewNum(3, nil), nil)

	var seen []ast.Kind
	ast.Walk(sub, func(n *ast.Node) { seen = append(seen, n.Kind) })

	assert.Equal(t, []ast.Kind{ast.NUM, ast.NUM, ast.ADD, ast.NUM, ast.SUB}, seen)
}

func TestWalkFollowsBodyAndArgsChains(t *testing.T) {
	s1 := ast.New(ast.NULL_STMT, nil)
	s2 := ast.New(ast.NULL_STMT, nil)
	s1.Next = s2

	block := ast.New(ast.COMPOUND_STMT, nil)
	block.Body = s1

	arg1 := ast.NewNum(1, nil)
	arg2 := ast.NewNum(2, nil)
	arg1.Next = arg2
	call := ast.New(ast.FUNC_CALL, nil)
	call.FuncName = "f"
	call.Args = arg1

	block.Body.Next.Next = nil // keep the chain clean: s1 -> s2

	var kinds []ast.Kind
	ast.Walk(block, func(n *ast.Node) { kinds = append(kinds, n.Kind) })
	assert.Equal(t, []ast.Kind{ast.NULL_STMT, ast.NULL_STMT, ast.COMPOUND_STMT}, kinds)

	kinds = nil
	ast.Walk(call, func(n *ast.Node) { kinds = append(kinds, n.Kind) })
	assert.Equal(t, []ast.Kind{ast.NUM, ast.NUM, ast.FUNC_CALL}, kinds)
}

func TestIsUnary(t *testing.T) {
	assert.True(t, ast.NEG.IsUnary())
	assert.True(t, ast.SIZEOF.IsUnary())
	assert.False(t, ast.ADD.IsUnary())
	assert.False(t, ast.IF_STMT.IsUnary())
}

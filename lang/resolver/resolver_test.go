package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/obscurecat64/quackcc/internal/diag"
	"github.com/obscurecat64/quackcc/lang/ast"
	"github.com/obscurecat64/quackcc/lang/resolver"
	"github.com/obscurecat64/quackcc/lang/token"
	"github.com/obscurecat64/quackcc/lang/types"
)

func newCtx() *diag.Context { return &diag.Context{Source: ""} }

func TestAddTypeArithmeticTakesLhsType(t *testing.T) {
	lhs := ast.NewNum(1, nil)
	rhs := ast.NewNum(2, nil)
	node := ast.NewBinary(ast.ADD, lhs, rhs, nil)

	resolver.AddType(newCtx(), node)

	assert.Same(t, types.TypeInt, node.Type)
}

func TestAddTypeIsIdempotent(t *testing.T) {
	node := ast.NewNum(1, nil)
	resolver.AddType(newCtx(), node)
	marker := node.Type
	node.Type = &types.Type{Kind: types.Int, Size: 8}
	resolver.AddType(newCtx(), node)

	assert.NotSame(t, marker, node.Type, "second call must not overwrite an already-set Type")
}

func TestAddTypeVarUsesDeclaredType(t *testing.T) {
	v := &ast.Obj{Name: "p", Type: types.PointerTo(types.TypeInt)}
	node := ast.NewVar(v, nil)

	resolver.AddType(newCtx(), node)

	assert.Same(t, v.Type, node.Type)
}

func TestAddTypeAddrOfArrayDecaysToPointerToElement(t *testing.T) {
	v := &ast.Obj{Name: "a", Type: types.ArrayOf(types.TypeInt, 4)}
	node := ast.NewUnary(ast.ADDR, ast.NewVar(v, nil), nil)

	resolver.AddType(newCtx(), node)

	assert.Equal(t, types.Ptr, node.Type.Kind)
	assert.Same(t, types.TypeInt, node.Type.Base)
}

func TestAddTypeAddrOfPlainVariable(t *testing.T) {
	v := &ast.Obj{Name: "x", Type: types.TypeInt}
	node := ast.NewUnary(ast.ADDR, ast.NewVar(v, nil), nil)

	resolver.AddType(newCtx(), node)

	assert.Equal(t, types.Ptr, node.Type.Kind)
	assert.Same(t, types.TypeInt, node.Type.Base)
}

func TestAddTypeDerefYieldsPointeeType(t *testing.T) {
	v := &ast.Obj{Name: "p", Type: types.PointerTo(types.TypeInt)}
	node := ast.NewUnary(ast.DEREF, ast.NewVar(v, nil), nil)

	resolver.AddType(newCtx(), node)

	assert.Same(t, types.TypeInt, node.Type)
}

func TestAddTypeComparisonsAndCallsAreInt(t *testing.T) {
	a := ast.NewNum(1, nil)
	b := ast.NewNum(2, nil)

	for _, kind := range []ast.Kind{ast.EQ, ast.NE, ast.LT, ast.LE, ast.GT, ast.GE} {
		node := ast.NewBinary(kind, a, b, nil)
		resolver.AddType(newCtx(), node)
		assert.Same(t, types.TypeInt, node.Type, "kind %v", kind)
	}

	call := ast.New(ast.FUNC_CALL, nil)
	call.FuncName = "f"
	resolver.AddType(newCtx(), call)
	assert.Same(t, types.TypeInt, call.Type)
}

func TestAddTypeSizeofFoldsToNum(t *testing.T) {
	v := &ast.Obj{Name: "a", Type: types.ArrayOf(types.TypeInt, 4)}
	node := ast.NewUnary(ast.SIZEOF, ast.NewVar(v, nil), nil)

	resolver.AddType(newCtx(), node)

	assert.Equal(t, ast.NUM, node.Kind)
	assert.Equal(t, int64(32), node.Val)
	assert.Same(t, types.TypeInt, node.Type)
}

func TestAddTypeAssignToArrayIsFatal(t *testing.T) {
	var exited int
	ctx := &diag.Context{
		Exit: func(code int) { exited = code; panic("exit") },
	}

	v := &ast.Obj{Name: "a", Type: types.ArrayOf(types.TypeInt, 4)}
	tok := &token.Token{}
	node := ast.NewBinary(ast.ASSIGN, ast.NewVar(v, nil), ast.NewNum(1, nil), tok)

	assert.PanicsWithValue(t, "exit", func() {
		resolver.AddType(ctx, node)
	})
	assert.Equal(t, 1, exited)
}

func TestAddTypeAssignToPlainVariableTakesLhsType(t *testing.T) {
	v := &ast.Obj{Name: "x", Type: types.TypeInt}
	node := ast.NewBinary(ast.ASSIGN, ast.NewVar(v, nil), ast.NewNum(1, nil), nil)

	resolver.AddType(newCtx(), node)

	assert.Same(t, types.TypeInt, node.Type)
}

func TestAddTypeWalksCompoundStmtBody(t *testing.T) {
	first := ast.NewUnary(ast.EXPR_STMT, ast.NewNum(1, nil), nil)
	second := ast.NewUnary(ast.EXPR_STMT, ast.NewNum(2, nil), nil)
	first.Next = second

	node := ast.New(ast.COMPOUND_STMT, nil)
	node.Body = first

	resolver.AddType(newCtx(), node)

	assert.Same(t, types.TypeInt, first.Lhs.Type)
	assert.Same(t, types.TypeInt, second.Lhs.Type)
}

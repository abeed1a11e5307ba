// Package resolver implements the compiler's type decorator: the pass
// that walks a parsed AST and attaches a lang/types.Type to every
// expression node, per the table in spec.md §4.3.6.
package resolver

import (
	"github.com/obscurecat64/quackcc/internal/diag"
	"github.com/obscurecat64/quackcc/lang/ast"
	"github.com/obscurecat64/quackcc/lang/types"
)

// AddType decorates node and everything beneath it (Lhs, Rhs, Cond, Body,
// Args) with a Type. It is idempotent: a node whose Type is already set is
// left untouched and not re-descended into, so lang/parser can call it
// eagerly on subexpressions (to desugar pointer arithmetic) without redoing
// work when the enclosing statement is decorated afterwards.
//
// ctx is only used for diagnostics; ASSIGN-to-array and dereference of a
// non-pointer are the semantic checks that belong to this pass rather than
// codegen (spec.md §7).
func AddType(ctx *diag.Context, node *ast.Node) {
	if node == nil || node.Type != nil {
		return
	}

	AddType(ctx, node.Lhs)
	AddType(ctx, node.Rhs)
	AddType(ctx, node.Cond)
	for b := node.Body; b != nil; b = b.Next {
		AddType(ctx, b)
	}
	for a := node.Args; a != nil; a = a.Next {
		AddType(ctx, a)
	}

	switch node.Kind {
	case ast.ADD, ast.SUB, ast.MUL, ast.DIV, ast.NEG:
		node.Type = node.Lhs.Type

	case ast.ASSIGN:
		if node.Lhs.Type.Kind == types.Array {
			ctx.ErrorAt(node.Tok.Offset, "not an lvalue")
		}
		node.Type = node.Lhs.Type

	case ast.EQ, ast.NE, ast.LT, ast.LE, ast.GT, ast.GE, ast.NUM, ast.FUNC_CALL:
		node.Type = types.TypeInt

	case ast.VAR:
		node.Type = node.Var.Type

	case ast.ADDR:
		if node.Lhs.Type.Kind == types.Array {
			// Array decay: &a has type pointer-to-element, not pointer-to-array.
			node.Type = types.PointerTo(node.Lhs.Type.Base)
		} else {
			node.Type = types.PointerTo(node.Lhs.Type)
		}

	case ast.DEREF:
		if node.Lhs.Type.Base == nil {
			ctx.ErrorAt(node.Tok.Offset, "invalid pointer dereference")
		}
		node.Type = node.Lhs.Type.Base

	case ast.SIZEOF:
		// lang/parser folds sizeof into a NUM at parse time and never
		// actually builds a SIZEOF node; this case exists for completeness
		// and for any AST assembled directly, e.g. in tests.
		node.Val = int64(node.Lhs.Type.Size)
		node.Kind = ast.NUM
		node.Type = types.TypeInt

	default:
		// Statements and NULL_STMT carry no type; leave node.Type nil.
	}
}

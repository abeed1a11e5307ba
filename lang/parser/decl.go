package parser

import (
	"golang.org/x/exp/slices"

	"github.com/obscurecat64/quackcc/lang/ast"
	"github.com/obscurecat64/quackcc/lang/token"
	"github.com/obscurecat64/quackcc/lang/types"
)

// declarator parses DeclaratorPrefix ArrayDim?, i.e. "*"* IDENT ("["
// NUM "]")+ — the subset of Declarator that applies to local variables
// (the FuncParams alternative only ever appears directly in FuncParams,
// reached from FunctionDef, never from a local Declaration). It returns
// the declared identifier's token and its fully-constructed type, base
// being the declaration's DeclSpec type (always types.TypeInt in this
// language).
func (p *parser) declarator(base *types.Type) (*token.Token, *types.Type) {
	typ := base
	for p.is("*") {
		p.advance()
		typ = types.PointerTo(typ)
	}

	tok := p.expectIdent()

	if !p.is("[") {
		return tok, typ
	}

	var dims []int64
	for p.is("[") {
		if len(dims) >= p.maxArrayDims {
			p.ctx.ErrorAt(p.cur.Offset, "too many array dimensions")
		}
		p.advance()
		dims = append(dims, p.expectNum())
		p.consume("]")
	}

	// Dimensions are read outer-to-inner (source order) but the type nests
	// inner-most first, so "int a[2][3]" becomes array-of-2 of array-of-3
	// of int (spec.md §4.3.5).
	slices.Reverse(dims)
	for _, d := range dims {
		typ = types.ArrayOf(typ, int(d))
	}
	return tok, typ
}

// declaration parses Declaration -> DeclSpec (Declarator ("=" Expr)? ("," Declarator ("=" Expr)?)*)? ";"
// and returns the head of a singly-linked list (via Next) of EXPR_STMT
// nodes, one per initializer; the list may be empty if no declarator had
// an initializer (or there were no declarators at all).
func (p *parser) declaration() *ast.Node {
	p.consume("int")

	var head ast.Node
	tail := &head

	for !p.is(";") {
		tok, typ := p.declarator(types.TypeInt)
		name := tok.Lexeme(p.src)
		if _, ok := p.findVar(name); ok {
			p.ctx.ErrorAt(tok.Offset, "redeclaration of '%s'", name)
		}
		v := p.registerLocal(name, typ)

		if p.is("=") {
			p.advance()
			rhs := p.expr()
			stmt := p.resolveType(ast.NewUnary(ast.EXPR_STMT,
				ast.NewBinary(ast.ASSIGN, ast.NewVar(v, tok), rhs, tok), tok))
			tail.Next = stmt
			tail = stmt
		}

		if !p.is(",") {
			break
		}
		p.advance()
	}

	p.consume(";")
	return head.Next
}

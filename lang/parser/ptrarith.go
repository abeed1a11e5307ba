package parser

import (
	"github.com/obscurecat64/quackcc/lang/ast"
	"github.com/obscurecat64/quackcc/lang/resolver"
	"github.com/obscurecat64/quackcc/lang/token"
	"github.com/obscurecat64/quackcc/lang/types"
)

// resolveSizeofOperand types operand (but never its surrounding
// expression) so sizeof can read its size without evaluating it —
// lang/resolver.AddType is idempotent, so calling it early here does not
// repeat work once the enclosing statement is decorated later.
func (p *parser) resolveSizeofOperand(operand *ast.Node) {
	resolver.AddType(p.ctx, operand)
}

// createAdd implements the "+" desugaring of spec.md §4.3.3: integer+integer
// builds ADD directly; pointer (or array, decayed to pointer-to-base) plus
// integer canonicalizes the pointer to lhs and scales the integer operand
// by the pointee size; pointer+pointer is an error. Both operands are
// typed eagerly (idempotently) so the kind check below is valid even
// though the enclosing statement hasn't been decorated yet.
func (p *parser) createAdd(lhs, rhs *ast.Node, tok *token.Token) *ast.Node {
	resolver.AddType(p.ctx, lhs)
	resolver.AddType(p.ctx, rhs)

	if types.IsInteger(lhs.Type) && types.IsInteger(rhs.Type) {
		return ast.NewBinary(ast.ADD, lhs, rhs, tok)
	}
	if types.IsPointerLike(lhs.Type) && types.IsPointerLike(rhs.Type) {
		p.ctx.ErrorAt(tok.Offset, "invalid operands")
	}
	if types.IsInteger(lhs.Type) && types.IsPointerLike(rhs.Type) {
		// num + ptr: canonicalize so the pointer is always lhs. The original
		// drafts left a dead `lhs = temp; rhs = lhs` assignment here that
		// never actually swapped the operands; this is the fix.
		lhs, rhs = rhs, lhs
	}

	scaled := p.scaleByPointeeSize(rhs, lhs.Type.Base, tok)
	return ast.NewBinary(ast.ADD, lhs, scaled, tok)
}

// createSub implements the "-" desugaring of spec.md §4.3.3: integer-integer
// builds SUB directly; pointer-integer scales the integer and builds SUB;
// pointer-pointer builds a SUB typed as INT and divides by the pointee
// size; integer-pointer is an error.
func (p *parser) createSub(lhs, rhs *ast.Node, tok *token.Token) *ast.Node {
	resolver.AddType(p.ctx, lhs)
	resolver.AddType(p.ctx, rhs)

	if types.IsInteger(lhs.Type) && types.IsInteger(rhs.Type) {
		return ast.NewBinary(ast.SUB, lhs, rhs, tok)
	}
	if types.IsPointerLike(lhs.Type) && types.IsInteger(rhs.Type) {
		scaled := p.scaleByPointeeSize(rhs, lhs.Type.Base, tok)
		return ast.NewBinary(ast.SUB, lhs, scaled, tok)
	}
	if types.IsPointerLike(lhs.Type) && types.IsPointerLike(rhs.Type) {
		diff := ast.NewBinary(ast.SUB, lhs, rhs, tok)
		diff.Type = types.TypeInt
		return ast.NewBinary(ast.DIV, diff, ast.NewNum(int64(lhs.Type.Base.Size), tok), tok)
	}

	p.ctx.ErrorAt(tok.Offset, "invalid operands")
	panic("unreachable")
}

func (p *parser) scaleByPointeeSize(n *ast.Node, pointee *types.Type, tok *token.Token) *ast.Node {
	scaled := ast.NewBinary(ast.MUL, n, ast.NewNum(int64(pointee.Size), tok), tok)
	resolver.AddType(p.ctx, scaled)
	return scaled
}

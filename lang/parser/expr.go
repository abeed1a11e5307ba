package parser

import (
	"github.com/obscurecat64/quackcc/lang/ast"
	"github.com/obscurecat64/quackcc/lang/token"
)

// Expr -> Assign
func (p *parser) expr() *ast.Node { return p.assign() }

// Assign -> Equality ("=" Assign)?, right-associative: a = b = 3 parses as
// ASSIGN(a, ASSIGN(b, 3)).
func (p *parser) assign() *ast.Node {
	node := p.equality()
	if p.is("=") {
		tok := p.cur
		p.advance()
		node = ast.NewBinary(ast.ASSIGN, node, p.assign(), tok)
	}
	return node
}

// Equality -> Relational (("==" | "!=") Relational)*, left-to-right
// chaining so "a - b - c" style associativity holds for every binary
// level below Assign.
func (p *parser) equality() *ast.Node {
	node := p.relational()
	for {
		tok := p.cur
		switch {
		case p.is("=="):
			p.advance()
			node = ast.NewBinary(ast.EQ, node, p.relational(), tok)
		case p.is("!="):
			p.advance()
			node = ast.NewBinary(ast.NE, node, p.relational(), tok)
		default:
			return node
		}
	}
}

// Relational -> Sum (("<" | "<=" | ">" | ">=") Sum)*
func (p *parser) relational() *ast.Node {
	node := p.sum()
	for {
		tok := p.cur
		switch {
		case p.is("<"):
			p.advance()
			node = ast.NewBinary(ast.LT, node, p.sum(), tok)
		case p.is("<="):
			p.advance()
			node = ast.NewBinary(ast.LE, node, p.sum(), tok)
		case p.is(">"):
			p.advance()
			node = ast.NewBinary(ast.GT, node, p.sum(), tok)
		case p.is(">="):
			p.advance()
			node = ast.NewBinary(ast.GE, node, p.sum(), tok)
		default:
			return node
		}
	}
}

// Sum -> Term (("+" | "-") Term)*, desugared through createAdd/createSub
// so that pointer arithmetic is scaled by the pointee size (spec.md §4.3.3).
func (p *parser) sum() *ast.Node {
	node := p.term()
	for {
		tok := p.cur
		switch {
		case p.is("+"):
			p.advance()
			node = p.createAdd(node, p.term(), tok)
		case p.is("-"):
			p.advance()
			node = p.createSub(node, p.term(), tok)
		default:
			return node
		}
	}
}

// Term -> Unary (("*" | "/") Unary)*
func (p *parser) term() *ast.Node {
	node := p.unary()
	for {
		tok := p.cur
		switch {
		case p.is("*"):
			p.advance()
			node = ast.NewBinary(ast.MUL, node, p.unary(), tok)
		case p.is("/"):
			p.advance()
			node = ast.NewBinary(ast.DIV, node, p.unary(), tok)
		default:
			return node
		}
	}
}

// Unary -> "+" Unary | "-" Unary | "*" Unary | "&" Unary | Postfix
func (p *parser) unary() *ast.Node {
	tok := p.cur
	switch {
	case p.is("+"):
		p.advance()
		return p.unary()
	case p.is("-"):
		p.advance()
		return ast.NewUnary(ast.NEG, p.unary(), tok)
	case p.is("*"):
		p.advance()
		return ast.NewUnary(ast.DEREF, p.unary(), tok)
	case p.is("&"):
		p.advance()
		return ast.NewUnary(ast.ADDR, p.unary(), tok)
	default:
		return p.postfix()
	}
}

// Postfix -> Factor ("[" Expr "]")*
//
// x[y] desugars to DEREF(createAdd(x, y)), reusing the pointer-arithmetic
// scaling rule and its pointer+pointer error (spec.md §4.3.4).
func (p *parser) postfix() *ast.Node {
	node := p.factor()
	for p.is("[") {
		tok := p.cur
		p.advance()
		index := p.expr()
		p.consume("]")
		node = ast.NewUnary(ast.DEREF, p.createAdd(node, index, tok), tok)
	}
	return node
}

// Factor -> NUM | "(" Expr ")" | "sizeof" Unary | IDENT ( "(" Args? ")" )?
func (p *parser) factor() *ast.Node {
	tok := p.cur

	switch {
	case p.cur.Kind == token.NUM:
		p.advance()
		return ast.NewNum(tok.Val, tok)

	case p.is("("):
		p.advance()
		node := p.expr()
		p.consume(")")
		return node

	case p.is("sizeof"):
		p.advance()
		operand := p.unary()
		p.resolveSizeofOperand(operand)
		return ast.NewNum(int64(operand.Type.Size), tok)

	case p.cur.Kind == token.IDENT:
		name := tok.Lexeme(p.src)
		p.advance()
		if p.is("(") {
			return p.funcCall(name, tok)
		}
		v, ok := p.findVar(name)
		if !ok {
			p.ctx.ErrorAt(tok.Offset, "undefined variable")
		}
		return ast.NewVar(v, tok)

	default:
		p.ctx.ErrorAt(tok.Offset, "unexpected '%s'", tok.Lexeme(p.src))
		panic("unreachable")
	}
}

// Args -> Expr ("," Expr)*
func (p *parser) funcCall(name string, tok *token.Token) *ast.Node {
	p.consume("(")

	node := ast.New(ast.FUNC_CALL, tok)
	node.FuncName = name

	if !p.is(")") {
		var head ast.Node
		tail := &head
		for {
			arg := p.expr()
			tail.Next = arg
			tail = arg
			if !p.is(",") {
				break
			}
			p.advance()
		}
		node.Args = head.Next
	}

	p.consume(")")
	return node
}

package parser

import (
	"github.com/obscurecat64/quackcc/lang/ast"
)

// compoundStmt parses CompoundStmt -> "{" (Declaration | Stmt)* "}". Each
// declaration's initializer statements and each ordinary statement become
// a sibling in the returned node's Body chain, and each is decorated with
// types as soon as it is appended (spec.md §4.3.6).
func (p *parser) compoundStmt() *ast.Node {
	startTok := p.cur
	p.consume("{")

	var head ast.Node
	tail := &head
	for !p.is("}") {
		if p.is("int") {
			if inits := p.declaration(); inits != nil {
				tail.Next = inits
				for tail.Next != nil {
					tail = tail.Next
				}
			}
			continue
		}

		s := p.resolveType(p.stmt())
		tail.Next = s
		tail = s
	}

	node := ast.New(ast.COMPOUND_STMT, startTok)
	node.Body = head.Next
	p.consume("}")
	return node
}

// Stmt -> ReturnStmt | IfStmt | ForStmt | WhileStmt | CompoundStmt | NullStmt | ExprStmt
func (p *parser) stmt() *ast.Node {
	switch {
	case p.is("return"):
		return p.returnStmt()
	case p.is("if"):
		return p.ifStmt()
	case p.is("for"):
		return p.forStmt()
	case p.is("while"):
		return p.whileStmt()
	case p.is("{"):
		return p.compoundStmt()
	case p.is(";"):
		return p.nullStmt()
	default:
		return p.exprStmt()
	}
}

// ReturnStmt -> "return" Expr ";"
func (p *parser) returnStmt() *ast.Node {
	tok := p.cur
	p.consume("return")
	e := p.expr()
	p.consume(";")
	return ast.NewUnary(ast.RETURN_STMT, e, tok)
}

// IfStmt -> "if" "(" Expr ")" Stmt ("else" Stmt)?
func (p *parser) ifStmt() *ast.Node {
	tok := p.cur
	p.consume("if")
	p.consume("(")
	cond := p.expr()
	p.consume(")")

	node := ast.New(ast.IF_STMT, tok)
	node.Cond = cond
	node.Lhs = p.stmt()
	if p.is("else") {
		p.advance()
		node.Rhs = p.stmt()
	}
	return node
}

// WhileStmt -> "while" "(" Expr ")" Stmt
func (p *parser) whileStmt() *ast.Node {
	tok := p.cur
	p.consume("while")
	p.consume("(")
	cond := p.expr()
	p.consume(")")

	node := ast.New(ast.WHILE_STMT, tok)
	node.Cond = cond
	node.Body = p.stmt()
	return node
}

// ForStmt -> "for" "(" Expr? ";" Expr? ";" Expr? ")" Stmt
func (p *parser) forStmt() *ast.Node {
	tok := p.cur
	p.consume("for")
	p.consume("(")

	node := ast.New(ast.FOR_STMT, tok)
	if !p.is(";") {
		node.Lhs = p.expr()
	}
	p.consume(";")
	if !p.is(";") {
		node.Cond = p.expr()
	}
	p.consume(";")
	if !p.is(")") {
		node.Rhs = p.expr()
	}
	p.consume(")")

	node.Body = p.stmt()
	return node
}

// NullStmt -> ";"
func (p *parser) nullStmt() *ast.Node {
	tok := p.cur
	p.consume(";")
	return ast.New(ast.NULL_STMT, tok)
}

// ExprStmt -> Expr ";"
func (p *parser) exprStmt() *ast.Node {
	tok := p.cur
	e := p.expr()
	p.consume(";")
	return ast.NewUnary(ast.EXPR_STMT, e, tok)
}

// Package parser implements the compiler's recursive-descent parser: it
// consumes the token stream produced by lang/scanner and builds a
// lang/ast.Fun list, resolving identifiers against a per-function locals
// table and decorating every new statement with lang/resolver as it goes.
package parser

import (
	"github.com/dolthub/swiss"

	"github.com/obscurecat64/quackcc/internal/diag"
	"github.com/obscurecat64/quackcc/lang/ast"
	"github.com/obscurecat64/quackcc/lang/resolver"
	"github.com/obscurecat64/quackcc/lang/scanner"
	"github.com/obscurecat64/quackcc/lang/token"
	"github.com/obscurecat64/quackcc/lang/types"
)

// defaultMaxArrayDims is the fixed bound spec.md §4.3.5 mandates for array
// declarators, used when Options.MaxArrayDims is left at zero.
const defaultMaxArrayDims = 16

// Options configures the parser. The zero value parses with the default
// array-dimension bound.
type Options struct {
	MaxArrayDims int
}

// Parse tokenizes and parses ctx.Source in full, returning the head of the
// resulting Fun list. Any lexical, syntactic, or (via the embedded type
// decorator) semantic error is fatal: Parse never returns on failure.
func Parse(ctx *diag.Context, opts Options) *ast.Fun {
	maxDims := opts.MaxArrayDims
	if maxDims <= 0 {
		maxDims = defaultMaxArrayDims
	}

	p := &parser{
		ctx:          ctx,
		src:          ctx.Source,
		maxArrayDims: maxDims,
		cur:          scanner.Tokenize(ctx),
	}
	return p.program()
}

// parser holds the small amount of process-wide state the grammar needs:
// the token cursor and the current function's locals table, reset at each
// function boundary (spec.md §5).
type parser struct {
	ctx *diag.Context
	src string

	cur          *token.Token
	maxArrayDims int

	// current function's symbol table; reset by beginFunction.
	locals     *ast.Obj                     // insertion-linked, newest first
	localsByID *swiss.Map[string, *ast.Obj] // fast lookup backing find_var
}

// --- token-stream helpers -------------------------------------------------

func (p *parser) advance() { p.cur = p.cur.Next }

func (p *parser) is(s string) bool {
	return (p.cur.Kind == token.PUNC || p.cur.Kind == token.KEYWORD) && p.cur.Is(p.src, s)
}

func (p *parser) consume(s string) {
	if !p.is(s) {
		p.ctx.ErrorAt(p.cur.Offset, "expected '%s'", s)
	}
	p.advance()
}

func (p *parser) expectIdent() *token.Token {
	if p.cur.Kind != token.IDENT {
		p.ctx.ErrorAt(p.cur.Offset, "expected an identifier")
	}
	tok := p.cur
	p.advance()
	return tok
}

func (p *parser) expectNum() int64 {
	if p.cur.Kind != token.NUM {
		p.ctx.ErrorAt(p.cur.Offset, "expected a number")
	}
	val := p.cur.Val
	p.advance()
	return val
}

// --- locals table ----------------------------------------------------------

func (p *parser) beginFunction() {
	p.locals = nil
	p.localsByID = swiss.NewMap[string, *ast.Obj](8)
}

// registerLocal creates a new local named name. Re-declaration of an
// existing name within the same function is not supported by this
// language; callers are expected to have already checked findVar.
func (p *parser) registerLocal(name string, typ *types.Type) *ast.Obj {
	obj := &ast.Obj{Name: name, Type: typ, Next: p.locals}
	p.locals = obj
	p.localsByID.Put(name, obj)
	return obj
}

func (p *parser) findVar(name string) (*ast.Obj, bool) {
	return p.localsByID.Get(name)
}

// --- grammar: Program, FunctionDef, FuncParams ------------------------------

// Program -> FunctionDef* EOF
func (p *parser) program() *ast.Fun {
	var head ast.Fun
	cur := &head
	for p.cur.Kind != token.EOF {
		fn := p.functionDef()
		cur.Next = fn
		cur = fn
	}
	return head.Next
}

// FunctionDef -> DeclSpec DeclaratorPrefix FuncParams CompoundStmt
func (p *parser) functionDef() *ast.Fun {
	p.consume("int")
	for p.is("*") {
		// Stars on a function's own declarator would encode a pointer return
		// type; every function in this language returns an int-width value
		// via x0 regardless (spec.md §6), so they are accepted and discarded.
		p.advance()
	}
	nameTok := p.expectIdent()

	p.beginFunction()
	params := p.funcParams()
	body := p.compoundStmt()

	return &ast.Fun{
		Name:   nameTok.Lexeme(p.src),
		Params: params,
		Locals: p.locals,
		Body:   body,
	}
}

// FuncParams -> "(" (DeclSpec DeclaratorPrefix ("," DeclSpec DeclaratorPrefix)*)? ")"
func (p *parser) funcParams() []*ast.Obj {
	p.consume("(")

	var params []*ast.Obj
	for !p.is(")") {
		if len(params) > 0 {
			p.consume(",")
		}
		p.consume("int")
		typ := types.TypeInt
		for p.is("*") {
			p.advance()
			typ = types.PointerTo(typ)
		}
		tok := p.expectIdent()
		name := tok.Lexeme(p.src)
		if _, ok := p.findVar(name); ok {
			p.ctx.ErrorAt(tok.Offset, "redeclaration of parameter '%s'", name)
		}
		params = append(params, p.registerLocal(name, typ))
	}
	p.consume(")")
	return params
}

// resolveType attaches types to node and everything beneath it, via
// lang/resolver — called once per new top-level child of a CompoundStmt,
// per spec.md §4.3.6.
func (p *parser) resolveType(node *ast.Node) *ast.Node {
	resolver.AddType(p.ctx, node)
	return node
}

// Package ast defines the compiler's abstract syntax tree.
//
// Unlike nenuphar's lang/ast (one Go struct type per grammar production),
// quackcc's AST is a single tagged Node type, matching the original
// quackcc drafts' Node/Obj/Fun shape (see _examples/original_source):
// the grammar is small and flat enough that a kind tag plus a handful of
// shared child pointers is the natural fit, and it keeps lang/resolver's
// recursive walk and lang/compiler's emission switch both trivial.
package ast

import (
	"fmt"

	"github.com/obscurecat64/quackcc/lang/token"
	"github.com/obscurecat64/quackcc/lang/types"
)

// Kind identifies what a Node represents.
type Kind int8

const (
	NUM Kind = iota
	ADD
	SUB
	MUL
	DIV
	NEG
	EQ
	NE
	LT
	LE
	GT
	GE
	ASSIGN
	ADDR
	DEREF
	VAR
	FUNC_CALL
	EXPR_STMT
	NULL_STMT
	RETURN_STMT
	COMPOUND_STMT
	IF_STMT
	WHILE_STMT
	FOR_STMT
	SIZEOF
)

var kindNames = [...]string{
	NUM:           "NUM",
	ADD:           "ADD",
	SUB:           "SUB",
	MUL:           "MUL",
	DIV:           "DIV",
	NEG:           "NEG",
	EQ:            "EQ",
	NE:            "NE",
	LT:            "LT",
	LE:            "LE",
	GT:            "GT",
	GE:            "GE",
	ASSIGN:        "ASSIGN",
	ADDR:          "ADDR",
	DEREF:         "DEREF",
	VAR:           "VAR",
	FUNC_CALL:     "FUNC_CALL",
	EXPR_STMT:     "EXPR_STMT",
	NULL_STMT:     "NULL_STMT",
	RETURN_STMT:   "RETURN_STMT",
	COMPOUND_STMT: "COMPOUND_STMT",
	IF_STMT:       "IF_STMT",
	WHILE_STMT:    "WHILE_STMT",
	FOR_STMT:      "FOR_STMT",
	SIZEOF:        "SIZEOF",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("<invalid Kind %d>", int(k))
	}
	return kindNames[k]
}

// Node is one AST node. Which fields are meaningful depends on Kind:
//
//   - unary nodes (NEG, ADDR, DEREF, RETURN_STMT, EXPR_STMT, SIZEOF) use
//     only Lhs.
//   - binary expressions use Lhs and Rhs.
//   - IF_STMT uses Cond, Lhs (then branch) and optionally Rhs (else branch).
//   - FOR_STMT uses Lhs (init), Cond, Rhs (update), Body (loop body); any
//     of init/cond/update may be nil.
//   - WHILE_STMT uses Cond and Body.
//   - COMPOUND_STMT uses Body as a singly-linked list of statements.
//   - FUNC_CALL uses FuncName and Args as a singly-linked list.
//   - Next chains sibling statements (inside Body) and sibling arguments
//     (inside Args); it plays no role in expression trees otherwise.
type Node struct {
	Kind Kind
	Val  int64 // NUM

	Lhs, Rhs *Node
	Cond     *Node
	Body     *Node // COMPOUND_STMT body / WHILE-FOR loop body, linked via Next
	Args     *Node // FUNC_CALL arguments, linked via Next
	Next     *Node // sibling link

	Tok      *token.Token // declaring/originating token, for diagnostics
	Var      *Obj         // VAR
	FuncName string       // FUNC_CALL

	Type *types.Type // attached post-parse by lang/resolver
}

// IsUnary reports whether k's node uses only Lhs.
func (k Kind) IsUnary() bool {
	switch k {
	case NEG, ADDR, DEREF, RETURN_STMT, EXPR_STMT, SIZEOF:
		return true
	default:
		return false
	}
}

// New allocates a bare node of the given kind.
func New(kind Kind, tok *token.Token) *Node {
	return &Node{Kind: kind, Tok: tok}
}

// NewBinary allocates a binary node.
func NewBinary(kind Kind, lhs, rhs *Node, tok *token.Token) *Node {
	return &Node{Kind: kind, Lhs: lhs, Rhs: rhs, Tok: tok}
}

// NewUnary allocates a unary node (Lhs only).
func NewUnary(kind Kind, lhs *Node, tok *token.Token) *Node {
	return &Node{Kind: kind, Lhs: lhs, Tok: tok}
}

// NewNum allocates a NUM node carrying val.
func NewNum(val int64, tok *token.Token) *Node {
	return &Node{Kind: NUM, Val: val, Tok: tok}
}

// NewVar allocates a VAR node referencing an already-declared local.
func NewVar(v *Obj, tok *token.Token) *Node {
	return &Node{Kind: VAR, Var: v, Tok: tok}
}

// Walk visits n and every descendant reachable through Lhs, Rhs, Cond,
// Body and Args (each followed through its Next chain), calling visit on
// each node. It visits in the same post-order as lang/resolver.AddType's
// own recursion (which does not call Walk), and is useful standalone for
// tests and debugging.
func Walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	Walk(n.Lhs, visit)
	Walk(n.Rhs, visit)
	Walk(n.Cond, visit)
	for b := n.Body; b != nil; b = b.Next {
		Walk(b, visit)
	}
	for a := n.Args; a != nil; a = a.Next {
		Walk(a, visit)
	}
	visit(n)
}

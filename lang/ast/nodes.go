package ast

import "github.com/obscurecat64/quackcc/lang/types"

// Obj is a local variable or parameter. Per function, Params lists them in
// declaration order and Locals lists every local (parameters included),
// insertion-linked newest-first — lang/compiler walks Locals in that
// order to assign frame offsets (spec.md §4.4.1). Offset is filled in by
// lang/compiler and is meaningless before codegen.
type Obj struct {
	Name   string
	Type   *types.Type
	Offset int // frame offset relative to fp, negative; set by lang/compiler
	Next   *Obj
}

// Fun is one parsed function: its full parameter list, its full local
// list (a superset of Params), and its body. StackSize is filled in by
// lang/compiler. Functions are chained via Next in source order.
//
// Params is a slice in declaration order (needed to move x0..x7 into
// their frame slots in that order, spec.md §4.4.1) rather than a walk of
// the Locals chain: Locals is threaded newest-first through Obj.Next, so
// the declaration order of Params is the reverse of how those same
// objects appear there. Every Obj in Params also appears in Locals.
type Fun struct {
	Name      string
	Params    []*Obj
	Locals    *Obj
	Body      *Node
	StackSize int // aligned to 16 bytes; set by lang/compiler
	Next      *Fun
}

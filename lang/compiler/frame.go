package compiler

import (
	"golang.org/x/exp/slices"

	"github.com/obscurecat64/quackcc/lang/ast"
)

// assignOffsets lays out fn's locals on the stack per spec.md §4.4.1: walk
// Locals in list order (newest first), assigning offset = -cumulative
// after growing cumulative by the local's size, then round up to a
// 16-byte boundary. It sets fn.StackSize and every local's Offset.
func assignOffsets(fn *ast.Fun) {
	var offset int
	for l := fn.Locals; l != nil; l = l.Next {
		offset += l.Type.Size
		l.Offset = -offset
	}
	fn.StackSize = align16(offset)
}

// declarationOrder reverses fn's newest-first Locals chain into a
// declaration-order slice, used only for annotation output: Locals
// threads through Obj.Next in the opposite order locals were declared in
// source, so printing them in a readable order needs an explicit reverse.
func declarationOrder(fn *ast.Fun) []*ast.Obj {
	var locals []*ast.Obj
	for l := fn.Locals; l != nil; l = l.Next {
		locals = append(locals, l)
	}
	slices.Reverse(locals)
	return locals
}

func align16(n int) int {
	return (n + 15) &^ 15
}

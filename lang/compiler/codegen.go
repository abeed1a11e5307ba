// Package compiler implements the code generator: it walks a parsed,
// type-decorated lang/ast.Fun list and writes AArch64/Darwin assembly
// text, per spec.md §4.4.
package compiler

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/obscurecat64/quackcc/internal/config"
	"github.com/obscurecat64/quackcc/internal/diag"
	"github.com/obscurecat64/quackcc/lang/ast"
	"github.com/obscurecat64/quackcc/lang/token"
	"github.com/obscurecat64/quackcc/lang/types"
)

// argRegs are the AArch64/Darwin argument registers, in order; spec.md
// §4.4.2 caps a call at their length.
var argRegs = [...]string{"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7"}

// condSuffix maps a comparison Kind to the "cset" condition code
// (spec.md §4.4.2: "eq/ne/lt/le/gt/ge").
var condSuffix = map[ast.Kind]string{
	ast.EQ: "eq",
	ast.NE: "ne",
	ast.LT: "lt",
	ast.LE: "le",
	ast.GT: "gt",
	ast.GE: "ge",
}

// gen holds the emission state for one function: the output stream, the
// push/pop depth counter (spec.md §8's "push/pop balance" invariant) and a
// per-function label counter.
type gen struct {
	ctx  *diag.Context
	out  io.Writer
	opts config.Options

	fn     *ast.Fun
	depth  int
	labels int
}

// Generate lays out every function's frame and writes its AArch64/Darwin
// assembly to out, in the order spec.md §4.4.5 requires: every function's
// ".global" directive first, then each function's full body.
func Generate(ctx *diag.Context, out io.Writer, opts config.Options, fns *ast.Fun) {
	for f := fns; f != nil; f = f.Next {
		assignOffsets(f)
	}
	if opts.Annotate {
		fmt.Fprintf(out, "# condition codes: %s\n", joinSorted(maps.Keys(condSuffix), condName))
		fmt.Fprintf(out, "# keywords: %s\n", joinSorted(token.Keywords[:], func(k string) string { return k }))
	}
	for f := fns; f != nil; f = f.Next {
		fmt.Fprintf(out, ".global _%s\n", f.Name)
	}
	for f := fns; f != nil; f = f.Next {
		g := &gen{ctx: ctx, out: out, opts: opts, fn: f}
		g.function(f)
	}
}

func (g *gen) emit(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}

func (g *gen) function(fn *ast.Fun) {
	if g.opts.Annotate {
		g.emit("# locals:")
		for _, l := range declarationOrder(fn) {
			g.emit(" %s@%d", l.Name, l.Offset)
		}
		g.emit("\n")
	}

	g.emit("_%s:\n", fn.Name)
	g.emit("\tstp fp, lr, [sp, #-16]!\n")
	g.emit("\tmov fp, sp\n")
	g.emit("\tsub sp, sp, #%d\n", fn.StackSize)

	for i, p := range fn.Params {
		if i >= len(argRegs) {
			g.ctx.Errorf("too many parameters in function %q", fn.Name)
		}
		g.emit("\tstr %s, [fp, #%d]\n", argRegs[i], p.Offset)
	}

	g.stmt(fn.Body)
	if g.depth != 0 {
		g.ctx.Errorf("internal error: unbalanced push/pop in function %q (depth=%d)", fn.Name, g.depth)
	}

	g.emit(".L.return.%s:\n", fn.Name)
	g.emit("\tmov sp, fp\n")
	g.emit("\tldp fp, lr, [sp], #16\n")
	g.emit("\tret\n")
}

func (g *gen) newLabel() int {
	g.labels++
	return g.labels
}

func (g *gen) label(n int) string {
	return fmt.Sprintf(".L%d.%s", n, g.fn.Name)
}

func (g *gen) push() {
	g.emit("\tstr x0, [sp, #-16]!\n")
	g.depth++
}

func (g *gen) pop(reg string) {
	g.emit("\tldr %s, [sp], #16\n", reg)
	g.depth--
}

// --- statements --------------------------------------------------------

func (g *gen) stmt(n *ast.Node) {
	if n == nil {
		return
	}
	if g.opts.Annotate {
		g.emit("\t# %s\n", n.Kind)
	}

	switch n.Kind {
	case ast.EXPR_STMT:
		g.expr(n.Lhs)

	case ast.RETURN_STMT:
		g.expr(n.Lhs)
		g.emit("\tb .L.return.%s\n", g.fn.Name)

	case ast.COMPOUND_STMT:
		for b := n.Body; b != nil; b = b.Next {
			g.stmt(b)
			if g.depth != 0 {
				g.ctx.Errorf("internal error: unbalanced push/pop after statement in function %q", g.fn.Name)
			}
		}

	case ast.NULL_STMT:
		// nothing to emit

	case ast.IF_STMT:
		g.ifStmt(n)

	case ast.WHILE_STMT:
		l1, l2 := g.newLabel(), g.newLabel()
		g.emit("%s:\n", g.label(l1))
		g.expr(n.Cond)
		g.emit("\tcmp x0, #0\n")
		g.emit("\tbeq %s\n", g.label(l2))
		g.stmt(n.Body)
		g.emit("\tb %s\n", g.label(l1))
		g.emit("%s:\n", g.label(l2))

	case ast.FOR_STMT:
		l1, l2 := g.newLabel(), g.newLabel()
		if n.Lhs != nil {
			g.expr(n.Lhs)
		}
		g.emit("%s:\n", g.label(l1))
		if n.Cond != nil {
			g.expr(n.Cond)
			g.emit("\tcmp x0, #0\n")
			g.emit("\tbeq %s\n", g.label(l2))
		}
		g.stmt(n.Body)
		if n.Rhs != nil {
			g.expr(n.Rhs)
		}
		g.emit("\tb %s\n", g.label(l1))
		g.emit("%s:\n", g.label(l2))

	default:
		g.ctx.Errorf("invalid statement")
	}
}

func (g *gen) ifStmt(n *ast.Node) {
	if n.Rhs == nil {
		l := g.newLabel()
		g.expr(n.Cond)
		g.emit("\tcmp x0, #0\n")
		g.emit("\tbeq %s\n", g.label(l))
		g.stmt(n.Lhs)
		g.emit("%s:\n", g.label(l))
		return
	}

	l1, l2 := g.newLabel(), g.newLabel()
	g.expr(n.Cond)
	g.emit("\tcmp x0, #0\n")
	g.emit("\tbeq %s\n", g.label(l1))
	g.stmt(n.Lhs)
	g.emit("\tb %s\n", g.label(l2))
	g.emit("%s:\n", g.label(l1))
	g.stmt(n.Rhs)
	g.emit("%s:\n", g.label(l2))
}

// --- expressions ---------------------------------------------------------

// expr evaluates n into x0.
func (g *gen) expr(n *ast.Node) {
	switch n.Kind {
	case ast.NUM:
		g.emit("\tmov x0, #%d\n", n.Val)

	case ast.NEG:
		g.expr(n.Lhs)
		g.emit("\tneg x0, x0\n")

	case ast.VAR:
		g.addr(n)
		g.load(n.Type)

	case ast.ADDR:
		g.addr(n.Lhs)

	case ast.DEREF:
		g.expr(n.Lhs)
		g.load(n.Type)

	case ast.ASSIGN:
		g.expr(n.Rhs)
		g.push()
		g.addr(n.Lhs)
		g.pop("x1")
		g.emit("\tstr x1, [x0]\n")

	case ast.FUNC_CALL:
		g.call(n)

	case ast.ADD, ast.SUB, ast.MUL, ast.DIV:
		g.binary(n)

	case ast.EQ, ast.NE, ast.LT, ast.LE, ast.GT, ast.GE:
		g.compare(n)

	default:
		g.ctx.Errorf("invalid expression")
	}
}

// load emits the rule from spec.md §4.4.2: arrays never load into a
// register, their address (already in x0) is the value.
func (g *gen) load(t *types.Type) {
	if t != nil && t.Kind == types.Array {
		return
	}
	g.emit("\tldr x0, [x0]\n")
}

func (g *gen) binary(n *ast.Node) {
	g.expr(n.Rhs)
	g.push()
	g.expr(n.Lhs)
	g.pop("x1")

	switch n.Kind {
	case ast.ADD:
		g.emit("\tadd x0, x0, x1\n")
	case ast.SUB:
		g.emit("\tsub x0, x0, x1\n")
	case ast.MUL:
		g.emit("\tmul x0, x0, x1\n")
	case ast.DIV:
		g.emit("\tsdiv x0, x0, x1\n")
	}
}

func (g *gen) compare(n *ast.Node) {
	g.expr(n.Rhs)
	g.push()
	g.expr(n.Lhs)
	g.pop("x1")

	g.emit("\tcmp x0, x1\n")
	g.emit("\tmov x0, #0\n")
	g.emit("\tcset x0, %s\n", condSuffix[n.Kind])
}

func (g *gen) call(n *ast.Node) {
	nargs := 0
	for a := n.Args; a != nil; a = a.Next {
		g.expr(a)
		g.push()
		nargs++
	}
	if nargs > len(argRegs) {
		g.ctx.Errorf("too many arguments in call to %q", n.FuncName)
	}
	for i := nargs - 1; i >= 0; i-- {
		g.pop(argRegs[i])
	}
	g.emit("\tbl _%s\n", n.FuncName)
}

// addr computes the address of an lvalue into x0 (spec.md §4.4.3).
func (g *gen) addr(n *ast.Node) {
	switch n.Kind {
	case ast.VAR:
		g.emit("\tadd x0, fp, #%d\n", n.Var.Offset)
	case ast.DEREF:
		g.expr(n.Lhs)
	default:
		g.ctx.Errorf("not an lvalue")
	}
}

func condName(k ast.Kind) string { return condSuffix[k] }

// joinSorted renders items as a deterministic, sorted comment list: map
// iteration order is random, so the annotation header built from
// maps.Keys needs an explicit sort to be stable across runs.
func joinSorted[T any](items []T, toStr func(T) string) string {
	strs := make([]string, len(items))
	for i, it := range items {
		strs[i] = toStr(it)
	}
	sort.Strings(strs)
	out := ""
	for i, s := range strs {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}

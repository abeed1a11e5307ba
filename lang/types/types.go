// Package types implements the small static type system threaded through
// the AST by lang/resolver: integers, pointers, arrays, and function
// signatures. Every *Type except the INT sentinel is freshly allocated;
// types form a DAG rooted at TypeInt, never a cycle.
package types

import "github.com/obscurecat64/quackcc/lang/token"

// Kind classifies a Type.
type Kind int8

const (
	Int Kind = iota
	Ptr
	Array
	Func
)

var kindNames = [...]string{
	Int:   "int",
	Ptr:   "pointer",
	Array: "array",
	Func:  "function",
}

func (k Kind) String() string { return kindNames[k] }

// Type describes the shape and size of a value. Base is the pointee (PTR)
// or element type (ARRAY); ReturnType and ParamTypes are only meaningful
// for FUN. Decl is a slot for the identifier token that introduced the
// type; lang/parser returns that token alongside the type instead and
// leaves Decl nil.
type Type struct {
	Kind Kind
	Size int // bytes; INT=8, PTR=8, ARRAY=Base.Size*ArrayLen, FUN unused

	Base     *Type // PTR, ARRAY
	ArrayLen int   // ARRAY only

	ReturnType    *Type // FUN only
	ParamTypes    *Type // FUN only: head of a singly-linked list of param types
	NextParamType *Type // links one entry of ParamTypes to the next

	Decl *token.Token
}

// TypeInt is the single process-wide sentinel for plain "int". All int
// typed nodes share this value; every other Type is freshly allocated by
// one of the constructors below.
var TypeInt = &Type{Kind: Int, Size: 8}

// IsInteger reports whether t is the (sole) integer type.
func IsInteger(t *Type) bool { return t != nil && t.Kind == Int }

// IsPointerLike reports whether t is a pointer or an array — both decay
// to an address in pointer arithmetic and dereference.
func IsPointerLike(t *Type) bool { return t != nil && (t.Kind == Ptr || t.Kind == Array) }

// PointerTo allocates a pointer type whose pointee is base.
func PointerTo(base *Type) *Type {
	return &Type{Kind: Ptr, Size: 8, Base: base}
}

// ArrayOf allocates an array type of len elements of base, sized
// base.Size * len.
func ArrayOf(base *Type, length int) *Type {
	return &Type{Kind: Array, Size: base.Size * length, Base: base, ArrayLen: length}
}

// NewFunc allocates a function type returning ret, with the given
// parameter types chained via NextParamType.
func NewFunc(ret *Type, params []*Type) *Type {
	t := &Type{Kind: Func, ReturnType: ret}
	var tail *Type
	for _, p := range params {
		if tail == nil {
			t.ParamTypes = p
		} else {
			tail.NextParamType = p
		}
		tail = p
	}
	return t
}

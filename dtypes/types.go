package dtypes

import (
	"fmt"
	"io"
)

// Type is the tagged sum from the data model: every variant knows how to
// Dump itself for diagnostics and how to peel away one layer of
// indirection via Inner.
type Type interface {
	Dump(w io.Writer)
	Inner() Type
}

/* -------------------------------------------------------------------------- */

type IntType struct {
	BitSize int
	Signed  bool
}

func (it *IntType) Dump(w io.Writer) {
	if it.Signed {
		fmt.Fprintf(w, "i%d", it.BitSize)
	} else {
		fmt.Fprintf(w, "u%d", it.BitSize)
	}
}

func (it *IntType) Inner() Type {
	return it
}

type FloatType struct {
	BitSize int
}

func (ft *FloatType) Dump(w io.Writer) {
	fmt.Fprintf(w, "f%d", ft.BitSize)
}

func (ft *FloatType) Inner() Type {
	return ft
}

type BoolType struct{}

func (bt *BoolType) Dump(w io.Writer) {
	fmt.Fprint(w, "bool")
}

func (bt *BoolType) Inner() Type {
	return bt
}

type CharType struct{}

func (ct *CharType) Dump(w io.Writer) {
	fmt.Fprint(w, "char")
}

func (ct *CharType) Inner() Type {
	return ct
}

// StrType is the string-slice type, lowered to `const char*` in C.
type StrType struct{}

func (st *StrType) Dump(w io.Writer) {
	fmt.Fprint(w, "str")
}

func (st *StrType) Inner() Type {
	return st
}

type VoidType struct{}

func (vt *VoidType) Dump(w io.Writer) {
	fmt.Fprint(w, "void")
}

func (vt *VoidType) Inner() Type {
	return vt
}

// UnknownType is the placeholder assigned before a node's type is
// resolved. No expression reachable from the program root should carry
// one past semantic analysis unless the pipeline has already aborted.
type UnknownType struct{}

func (ut *UnknownType) Dump(w io.Writer) {
	fmt.Fprint(w, "<unknown>")
}

func (ut *UnknownType) Inner() Type {
	return ut
}

/* -------------------------------------------------------------------------- */

type ArrayType struct {
	ElemType Type
	Size     uint64
}

func (at *ArrayType) Dump(w io.Writer) {
	fmt.Fprint(w, "[")
	at.ElemType.Dump(w)
	fmt.Fprintf(w, "; %d]", at.Size)
}

func (at *ArrayType) Inner() Type {
	return at
}

// PointerType is a raw, C-interop pointer — `*T` in the surface syntax.
type PointerType struct {
	Pointee Type
}

func (pt *PointerType) Dump(w io.Writer) {
	fmt.Fprint(w, "*")
	pt.Pointee.Dump(w)
}

func (pt *PointerType) Inner() Type {
	return pt
}

// ReferenceType is `&T` / `&mut T`, lowered to `const T*` / `T*`.
type ReferenceType struct {
	Referent Type
	Mutable  bool
}

func (rt *ReferenceType) Dump(w io.Writer) {
	fmt.Fprint(w, "&")
	if rt.Mutable {
		fmt.Fprint(w, "mut ")
	}
	rt.Referent.Dump(w)
}

func (rt *ReferenceType) Inner() Type {
	return rt
}

// StructType is a nominal reference to a user-defined struct, resolved
// against the type registry by name — equality is by name, not shape.
type StructType struct {
	Name string
}

func (st *StructType) Dump(w io.Writer) {
	fmt.Fprint(w, st.Name)
}

func (st *StructType) Inner() Type {
	return st
}

/* -------------------------------------------------------------------------- */

// FuncType has no surface syntax (the source language has no function
// values) but is how a Function/ExternFunction symbol's signature is
// represented in the symbol table.
type FuncType struct {
	Params     []Type
	ReturnType Type
}

func (ft *FuncType) Dump(w io.Writer) {
	fmt.Fprint(w, "(")

	for i, param := range ft.Params {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}

		param.Dump(w)
	}

	fmt.Fprint(w, ") -> ")
	ft.ReturnType.Dump(w)
}

func (ft *FuncType) Inner() Type {
	return ft
}

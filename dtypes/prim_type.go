package dtypes

var (
	GlobI8Type   Type = &IntType{BitSize: 8, Signed: true}
	GlobU8Type   Type = &IntType{BitSize: 8, Signed: false}
	GlobI16Type  Type = &IntType{BitSize: 16, Signed: true}
	GlobU16Type  Type = &IntType{BitSize: 16, Signed: false}
	GlobI32Type  Type = &IntType{BitSize: 32, Signed: true}
	GlobU32Type  Type = &IntType{BitSize: 32, Signed: false}
	GlobI64Type  Type = &IntType{BitSize: 64, Signed: true}
	GlobU64Type  Type = &IntType{BitSize: 64, Signed: false}
	GlobF32Type  Type = &FloatType{BitSize: 32}
	GlobF64Type  Type = &FloatType{BitSize: 64}
	GlobBoolType Type = &BoolType{}
	GlobCharType Type = &CharType{}
	GlobStrType  Type = &StrType{}
	GlobVoidType Type = &VoidType{}

	// Default types for numeric literals in the absence of destination
	// context (data model invariant 8).
	GlobDefaultIntType   = GlobI32Type
	GlobDefaultFloatType = GlobF64Type
)

/* -------------------------------------------------------------------------- */

func IsIntegerType(typ Type) bool {
	_, ok := typ.Inner().(*IntType)
	return ok
}

func IsFloatType(typ Type) bool {
	_, ok := typ.Inner().(*FloatType)
	return ok
}

func IsNumberType(typ Type) bool {
	switch typ.Inner().(type) {
	case *IntType, *FloatType:
		return true
	default:
		return false
	}
}

func IsStructType(typ Type) bool {
	_, ok := typ.Inner().(*StructType)
	return ok
}

// Deref auto-dereferences a single layer of pointer or reference, the
// "auto-dereference" named in the glossary. Anything else is returned
// unchanged.
func Deref(typ Type) Type {
	switch v := typ.Inner().(type) {
	case *PointerType:
		return v.Pointee
	case *ReferenceType:
		return v.Referent
	default:
		return typ
	}
}

package dtypes

// Equal is structural equality: element types/sizes recursively for
// arrays/pointers/references/funcs, by name for structs, spec §3.
func Equal(a, b Type) bool {
	a = a.Inner()
	b = b.Inner()

	switch v := a.(type) {
	case *IntType:
		if bint, ok := b.(*IntType); ok {
			return v.BitSize == bint.BitSize && v.Signed == bint.Signed
		}
	case *FloatType:
		if bfloat, ok := b.(*FloatType); ok {
			return v.BitSize == bfloat.BitSize
		}
	case *BoolType:
		_, ok := b.(*BoolType)
		return ok
	case *CharType:
		_, ok := b.(*CharType)
		return ok
	case *StrType:
		_, ok := b.(*StrType)
		return ok
	case *VoidType:
		_, ok := b.(*VoidType)
		return ok
	case *ArrayType:
		if barr, ok := b.(*ArrayType); ok {
			return v.Size == barr.Size && Equal(v.ElemType, barr.ElemType)
		}
	case *PointerType:
		if bptr, ok := b.(*PointerType); ok {
			return Equal(v.Pointee, bptr.Pointee)
		}
	case *ReferenceType:
		if bref, ok := b.(*ReferenceType); ok {
			return v.Mutable == bref.Mutable && Equal(v.Referent, bref.Referent)
		}
	case *StructType:
		if bstruct, ok := b.(*StructType); ok {
			return v.Name == bstruct.Name
		}
	case *FuncType:
		if bfn, ok := b.(*FuncType); ok {
			if len(v.Params) != len(bfn.Params) {
				return false
			}

			for i, aparam := range v.Params {
				if !Equal(aparam, bfn.Params[i]) {
					return false
				}
			}

			return Equal(v.ReturnType, bfn.ReturnType)
		}
	}

	return false
}

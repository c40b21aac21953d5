package codegen

import (
	"strconv"

	"github.com/christopherzimmerman/jfmc/dtypes"
)

func itoa(n uint64) string {
	return strconv.FormatUint(n, 10)
}

// lowerType renders typ per spec §4.4's type-lowering table. Arrays
// are the one case the table says to special-case at the declaration
// site instead (handled by declString), so lowerType on an array
// type here yields only its element type's C form.
func lowerType(typ dtypes.Type) string {
	if typ == nil {
		return "void"
	}

	switch t := typ.Inner().(type) {
	case *dtypes.IntType:
		return intTypeName(t)
	case *dtypes.FloatType:
		if t.BitSize == 32 {
			return "float"
		}
		return "double"
	case *dtypes.BoolType:
		return "_Bool"
	case *dtypes.CharType:
		return "char"
	case *dtypes.VoidType:
		return "void"
	case *dtypes.StrType:
		return "const char*"
	case *dtypes.PointerType:
		return lowerType(t.Pointee) + "*"
	case *dtypes.ReferenceType:
		if t.Mutable {
			return lowerType(t.Referent) + "*"
		}
		return "const " + lowerType(t.Referent) + "*"
	case *dtypes.StructType:
		return t.Name
	case *dtypes.ArrayType:
		return lowerType(t.ElemType)
	default:
		return "void"
	}
}

func intTypeName(t *dtypes.IntType) string {
	if t.Signed {
		switch t.BitSize {
		case 8:
			return "int8_t"
		case 16:
			return "int16_t"
		case 32:
			return "int32_t"
		case 64:
			return "int64_t"
		}
	} else {
		switch t.BitSize {
		case 8:
			return "uint8_t"
		case 16:
			return "uint16_t"
		case 32:
			return "uint32_t"
		case 64:
			return "uint64_t"
		}
	}
	return "int32_t"
}

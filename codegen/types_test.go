package codegen

import (
	"testing"

	"github.com/christopherzimmerman/jfmc/dtypes"
)

func TestLowerTypePrimitives(t *testing.T) {
	tests := []struct {
		name string
		in   dtypes.Type
		want string
	}{
		{"i8", dtypes.GlobI8Type, "int8_t"},
		{"u64", dtypes.GlobU64Type, "uint64_t"},
		{"f32", dtypes.GlobF32Type, "float"},
		{"f64", dtypes.GlobF64Type, "double"},
		{"bool", dtypes.GlobBoolType, "_Bool"},
		{"char", dtypes.GlobCharType, "char"},
		{"str", dtypes.GlobStrType, "const char*"},
		{"void", dtypes.GlobVoidType, "void"},
		{"struct", &dtypes.StructType{Name: "Point"}, "Point"},
		{"pointer", &dtypes.PointerType{Pointee: dtypes.GlobI32Type}, "int32_t*"},
		{"immutable reference", &dtypes.ReferenceType{Referent: dtypes.GlobI32Type, Mutable: false}, "const int32_t*"},
		{"mutable reference", &dtypes.ReferenceType{Referent: dtypes.GlobI32Type, Mutable: true}, "int32_t*"},
		{"nil type falls back to void", nil, "void"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := lowerType(tc.in); got != tc.want {
				t.Errorf("lowerType(%v) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDeclStringArrayDeclaresWithTrailingBracket(t *testing.T) {
	typ := &dtypes.ArrayType{ElemType: dtypes.GlobI32Type, Size: 5}
	if got, want := declString("xs", typ), "int32_t xs[5]"; got != want {
		t.Errorf("declString = %q; want %q", got, want)
	}
}

func TestDeclStringScalar(t *testing.T) {
	if got, want := declString("n", dtypes.GlobI32Type), "int32_t n"; got != want {
		t.Errorf("declString = %q; want %q", got, want)
	}
}

package dtypes

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same int width and sign", GlobI32Type, &IntType{BitSize: 32, Signed: true}, true},
		{"same width different sign", GlobI32Type, GlobU32Type, false},
		{"different width", GlobI32Type, GlobI64Type, false},
		{"same float width", GlobF64Type, &FloatType{BitSize: 64}, true},
		{"different float width", GlobF32Type, GlobF64Type, false},
		{"bool vs bool", GlobBoolType, &BoolType{}, true},
		{"bool vs char", GlobBoolType, GlobCharType, false},
		{"struct same name", &StructType{Name: "P"}, &StructType{Name: "P"}, true},
		{"struct different name", &StructType{Name: "P"}, &StructType{Name: "Q"}, false},
		{"array same elem and size", &ArrayType{ElemType: GlobI32Type, Size: 3}, &ArrayType{ElemType: GlobI32Type, Size: 3}, true},
		{"array different size", &ArrayType{ElemType: GlobI32Type, Size: 3}, &ArrayType{ElemType: GlobI32Type, Size: 4}, false},
		{"pointer to same pointee", &PointerType{Pointee: GlobI32Type}, &PointerType{Pointee: GlobI32Type}, true},
		{"reference mutability differs", &ReferenceType{Referent: GlobI32Type, Mutable: true}, &ReferenceType{Referent: GlobI32Type, Mutable: false}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b); got != tc.want {
				t.Errorf("Equal(%v, %v) = %v; want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		name      string
		dest, src Type
		want      bool
	}{
		{"equal types", GlobI32Type, GlobI32Type, true},
		{"both integral, different width", GlobI64Type, GlobI32Type, true},
		{"both integral, different sign", GlobU32Type, GlobI32Type, true},
		{"both floating, different width", GlobF32Type, GlobF64Type, true},
		{"int dest, float src", GlobI32Type, GlobF32Type, false},
		{"str dest, int src", GlobStrType, GlobI32Type, false},
		{"struct dest, struct src, different name", &StructType{Name: "A"}, &StructType{Name: "B"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compatible(tc.dest, tc.src); got != tc.want {
				t.Errorf("Compatible(%v, %v) = %v; want %v", tc.dest, tc.src, got, tc.want)
			}
		})
	}
}

func TestCanCast(t *testing.T) {
	if !CanCast(GlobI32Type) {
		t.Error("CanCast(i32) = false; want true")
	}
	if CanCast(&UnknownType{}) {
		t.Error("CanCast(unknown) = true; want false")
	}
}

func TestDeref(t *testing.T) {
	tests := []struct {
		name string
		in   Type
		want Type
	}{
		{"pointer derefs to pointee", &PointerType{Pointee: GlobI32Type}, GlobI32Type},
		{"reference derefs to referent", &ReferenceType{Referent: GlobF64Type}, GlobF64Type},
		{"non-indirect type is unchanged", GlobBoolType, GlobBoolType},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Deref(tc.in); !Equal(got, tc.want) {
				t.Errorf("Deref(%v) = %v; want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsNumberType(t *testing.T) {
	if !IsNumberType(GlobI32Type) || !IsNumberType(GlobF64Type) {
		t.Error("IsNumberType should accept int and float types")
	}
	if IsNumberType(GlobBoolType) || IsNumberType(GlobStrType) {
		t.Error("IsNumberType should reject non-numeric types")
	}
}

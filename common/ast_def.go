package common

import (
	"github.com/christopherzimmerman/jfmc/dtypes"
)

// Param is a name+type pair, shared by function/method parameters and
// struct fields — spec §3 gives both the same shape.
type Param struct {
	Name string
	Type dtypes.Type
}

/* -------------------------------------------------------------------------- */

type Program struct {
	AstBase

	Items []AstNode
}

type Include struct {
	AstBase

	Path     string
	IsSystem bool
}

type ExternFunction struct {
	AstBase

	Name       string
	Params     []Param
	ReturnType dtypes.Type
}

type Function struct {
	AstBase

	Name       string
	Params     []Param
	ReturnType dtypes.Type
	Body       *Block

	Symbol *Symbol

	// ReceiverStruct is non-empty when this Function was parsed inside
	// an Impl block — the mangled global name is ReceiverStruct + "::" +
	// Name, and the first parameter is the receiver.
	ReceiverStruct string
}

func (f *Function) MangledName() string {
	if f.ReceiverStruct == "" {
		return f.Name
	}

	return f.ReceiverStruct + "::" + f.Name
}

type Struct struct {
	AstBase

	Name     string
	Fields   []Param
	IsExtern bool
}

type Impl struct {
	AstBase

	StructName string
	Functions  []*Function
}

package datatypes

import (
	"github.com/abeai/sequelize/types"
)

// VirtualType has no storage representation. It carries an optional
// declared return type for downstream consumers (schema and documentation
// generators) and the names of the real columns that must be loaded to
// compute its value.
type VirtualType struct {
	base
	returnType types.DataType
	fields     []string
}

// NewVirtual creates a VIRTUAL descriptor. Both arguments are optional:
// a nil return type means undeclared, an empty field list means no
// dependencies.
func NewVirtual(returnType types.DataType, fields ...string) *VirtualType {
	deps := make([]string, len(fields))
	copy(deps, fields)
	return &VirtualType{base: newBase("VIRTUAL"), returnType: returnType, fields: deps}
}

// ReturnType returns the declared return type, nil when undeclared
func (t *VirtualType) ReturnType() types.DataType {
	return t.returnType
}

// Fields returns a copy of the dependent column names
func (t *VirtualType) Fields() []string {
	out := make([]string, len(t.fields))
	copy(out, t.fields)
	return out
}

// ToSQL is not meaningful for a virtual column
func (t *VirtualType) ToSQL(ctx *types.SQLContext) (string, error) {
	return "", types.NewConfigurationError("VIRTUAL has no SQL representation")
}

// Stringify is not meaningful for a virtual column
func (t *VirtualType) Stringify(value any, ctx *types.StringifyContext) (string, error) {
	return "", types.NewConfigurationError("VIRTUAL values cannot be serialized to SQL")
}

// BindParam is not meaningful for a virtual column
func (t *VirtualType) BindParam(value any, ctx *types.BindParamContext) (string, error) {
	return "", types.NewConfigurationError("VIRTUAL values cannot be bound")
}

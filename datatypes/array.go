package datatypes

import (
	"reflect"

	"github.com/abeai/sequelize/types"
)

// ArrayType wraps an inner descriptor and renders its declaration with a
// [] suffix. Item-level validation against the inner type is the
// consuming layer's responsibility.
type ArrayType struct {
	base
	subtype types.DataType
}

// NewArray creates an ARRAY descriptor around a subtype.
func NewArray(subtype types.DataType) (*ArrayType, error) {
	if subtype == nil {
		return nil, types.NewConfigurationError("ARRAY requires a subtype")
	}
	return &ArrayType{base: newBase("ARRAY"), subtype: subtype}, nil
}

// Subtype returns the wrapped inner descriptor
func (t *ArrayType) Subtype() types.DataType {
	return t.subtype
}

func (t *ArrayType) ToSQL(ctx *types.SQLContext) (string, error) {
	if sql, ok, err := dialectSQL(t, ctx); ok || err != nil {
		return sql, err
	}
	inner, err := t.subtype.ToSQL(ctx)
	if err != nil {
		return "", err
	}
	return inner + "[]", nil
}

func (t *ArrayType) Validate(value any) error {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return nil
	default:
		return types.NewValidationError(value, "a valid array")
	}
}

// IsArrayOfType reports whether dt is an ARRAY descriptor whose subtype
// carries the given key.
func IsArrayOfType(dt types.DataType, key string) bool {
	arr, ok := dt.(*ArrayType)
	return ok && arr.subtype.Key() == key
}

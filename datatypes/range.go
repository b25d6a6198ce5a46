package datatypes

import (
	"reflect"

	"github.com/abeai/sequelize/types"
)

// rangeSubtypes are the descriptor keys a RANGE may wrap: the numeric and
// temporal kinds that have a total order.
var rangeSubtypes = map[string]struct{}{
	"INTEGER":  {},
	"BIGINT":   {},
	"DECIMAL":  {},
	"DATE":     {},
	"DATEONLY": {},
}

// RangeType wraps a numeric or temporal subtype and stores a pair of
// bounds.
type RangeType struct {
	base
	subtype types.DataType
}

// NewRange creates a RANGE descriptor. A nil subtype defaults to INTEGER;
// a subtype outside the numeric/temporal kinds is a configuration error.
func NewRange(subtype types.DataType) (*RangeType, error) {
	if subtype == nil {
		subtype = Integer
	}
	if _, ok := rangeSubtypes[subtype.Key()]; !ok {
		return nil, types.NewConfigurationError("RANGE subtype must be numeric or temporal, got %s", subtype.Key())
	}
	return &RangeType{base: newBase("RANGE"), subtype: subtype}, nil
}

func (t *RangeType) ToSQL(ctx *types.SQLContext) (string, error) {
	if sql, ok, err := dialectSQL(t, ctx); ok || err != nil {
		return sql, err
	}
	return "RANGE", nil
}

// Subtype returns the wrapped inner descriptor
func (t *RangeType) Subtype() types.DataType {
	return t.subtype
}

func (t *RangeType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 2 {
			return nil
		}
	}
	return types.NewValidationError(value, "a valid range, expected a two-element array of bounds")
}

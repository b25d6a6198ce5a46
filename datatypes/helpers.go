package datatypes

import (
	"reflect"

	"github.com/abeai/sequelize/types"
)

// IsType reports whether a descriptor carries the given taxonomy key.
func IsType(dt types.DataType, key string) bool {
	return dt != nil && dt.Key() == key
}

// Extend clones a descriptor, preserving its frozen options. Dialect
// packages use it when deriving a variant from an existing column
// definition; the original is never touched.
func Extend(dt types.DataType) types.DataType {
	rv := reflect.ValueOf(dt)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return dt
	}
	clone := reflect.New(rv.Elem().Type())
	clone.Elem().Set(rv.Elem())
	return clone.Interface().(types.DataType)
}

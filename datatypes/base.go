// Package datatypes implements the SQL data-type descriptors an ORM's
// query-generation layer consumes: each descriptor renders a column
// declaration, validates application values, and serializes accepted
// values into literal SQL text or a bound-parameter form.
//
// Descriptors are immutable value objects. Modifier methods (Unsigned,
// Zerofill, Binary) derive copies and never touch the receiver, so a
// constructed descriptor is safe for unrestricted concurrent use.
package datatypes

import (
	"reflect"

	"github.com/abeai/sequelize/registry"
	"github.com/abeai/sequelize/types"
	"github.com/abeai/sequelize/utils"
)

// base carries the state every descriptor shares and supplies the default
// behavior of the types.DataType contract. Concrete descriptors embed it
// by value and override only what differs.
type base struct {
	key    string
	escape bool
}

func newBase(key string) base {
	return base{key: key, escape: true}
}

// newRawBase builds a base for types whose literals self-quote (floats,
// blobs, geometry) and therefore bypass caller-side escaping.
func newRawBase(key string) base {
	return base{key: key, escape: false}
}

// Key returns the taxonomy identifier
func (b base) Key() string {
	return b.key
}

// NeedsEscape reports whether Stringify output still requires quoting
func (b base) NeedsEscape() bool {
	return b.escape
}

// ToSQL renders the descriptor key, or a registered dialect override.
// Descriptors with a parameterized declaration override this method.
func (b base) ToSQL(ctx *types.SQLContext) (string, error) {
	if b.key == "" {
		return "", types.NewConfigurationError("data type has no key; construct descriptors through the datatypes factories")
	}
	if sql, ok, err := dialectSQL(b, ctx); ok || err != nil {
		return sql, err
	}
	return b.key, nil
}

// Validate accepts any value by default
func (b base) Validate(value any) error {
	return nil
}

// Stringify converts the value via generic string conversion
func (b base) Stringify(value any, ctx *types.StringifyContext) (string, error) {
	return utils.ToString(value), nil
}

// BindParam hands the value to the caller's binder unmodified
func (b base) BindParam(value any, ctx *types.BindParamContext) (string, error) {
	if ctx == nil || ctx.BindParam == nil {
		return "", types.NewConfigurationError("bind parameter context has no binder")
	}
	return ctx.BindParam(value), nil
}

// Sanitize returns the value unchanged
func (b base) Sanitize(value any, opts *types.SanitizeOptions) any {
	return value
}

// AreValuesEqual uses structural equality
func (b base) AreValuesEqual(a, v any) bool {
	return reflect.DeepEqual(a, v)
}

// dialectSQL returns the declaration a dialect registered for this
// descriptor's key, if any. A nil context or empty dialect always falls
// through to the descriptor's default rendering.
func dialectSQL(dt types.DataType, ctx *types.SQLContext) (string, bool, error) {
	if ctx == nil || ctx.Dialect == "" {
		return "", false, nil
	}
	override, ok := registry.Lookup(ctx.Dialect, dt.Key())
	if !ok {
		return "", false, nil
	}
	if override.Render != nil {
		sql, err := override.Render(dt)
		return sql, true, err
	}
	if override.SQL != "" {
		return override.SQL, true, nil
	}
	return "", false, nil
}

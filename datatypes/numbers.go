package datatypes

import (
	"fmt"
	"math"
	"strings"

	"github.com/abeai/sequelize/types"
	"github.com/abeai/sequelize/utils"
)

// NumberOptions is the option shape shared by the integer and float
// families. Zero values mean "not set" and are omitted from the rendered
// declaration.
type NumberOptions struct {
	Length   int
	Decimals int
	Unsigned bool
	Zerofill bool
}

// IntegerType covers the whole-number family: TINYINT, SMALLINT,
// MEDIUMINT, INTEGER and BIGINT, distinguished by key.
type IntegerType struct {
	base
	opts NumberOptions
}

func newIntegerKind(key string, opts NumberOptions) *IntegerType {
	return &IntegerType{base: newBase(key), opts: opts}
}

// NewTinyInt creates a TINYINT descriptor
func NewTinyInt(opts NumberOptions) *IntegerType { return newIntegerKind("TINYINT", opts) }

// NewSmallInt creates a SMALLINT descriptor
func NewSmallInt(opts NumberOptions) *IntegerType { return newIntegerKind("SMALLINT", opts) }

// NewMediumInt creates a MEDIUMINT descriptor
func NewMediumInt(opts NumberOptions) *IntegerType { return newIntegerKind("MEDIUMINT", opts) }

// NewInteger creates an INTEGER descriptor
func NewInteger(opts NumberOptions) *IntegerType { return newIntegerKind("INTEGER", opts) }

// NewBigInt creates a BIGINT descriptor
func NewBigInt(opts NumberOptions) *IntegerType { return newIntegerKind("BIGINT", opts) }

// Options returns the frozen numeric options
func (t *IntegerType) Options() NumberOptions {
	return t.opts
}

// Unsigned derives a copy with the UNSIGNED modifier set. The receiver is
// left untouched.
func (t *IntegerType) Unsigned() *IntegerType {
	c := *t
	c.opts.Unsigned = true
	return &c
}

// Zerofill derives a copy with the ZEROFILL modifier set
func (t *IntegerType) Zerofill() *IntegerType {
	c := *t
	c.opts.Zerofill = true
	return &c
}

func (t *IntegerType) ToSQL(ctx *types.SQLContext) (string, error) {
	if sql, ok, err := dialectSQL(t, ctx); ok || err != nil {
		return sql, err
	}
	return renderNumberSQL(t.key, t.opts), nil
}

func (t *IntegerType) Validate(value any) error {
	if utils.IsIntegerValue(value) {
		return nil
	}
	return types.NewValidationError(value, fmt.Sprintf("a valid %s", strings.ToLower(t.key)))
}

// FloatType covers the floating-point family: FLOAT, REAL and DOUBLE,
// distinguished by key. Its literals self-quote so the NaN and Infinity
// tokens can be emitted as quoted text.
type FloatType struct {
	base
	opts NumberOptions
}

func newFloatKind(key string, opts NumberOptions) *FloatType {
	return &FloatType{base: newRawBase(key), opts: opts}
}

// NewFloat creates a FLOAT descriptor
func NewFloat(opts NumberOptions) *FloatType { return newFloatKind("FLOAT", opts) }

// NewReal creates a REAL descriptor
func NewReal(opts NumberOptions) *FloatType { return newFloatKind("REAL", opts) }

// NewDouble creates a DOUBLE descriptor
func NewDouble(opts NumberOptions) *FloatType { return newFloatKind("DOUBLE", opts) }

// Options returns the frozen numeric options
func (t *FloatType) Options() NumberOptions {
	return t.opts
}

// Unsigned derives a copy with the UNSIGNED modifier set
func (t *FloatType) Unsigned() *FloatType {
	c := *t
	c.opts.Unsigned = true
	return &c
}

// Zerofill derives a copy with the ZEROFILL modifier set
func (t *FloatType) Zerofill() *FloatType {
	c := *t
	c.opts.Zerofill = true
	return &c
}

func (t *FloatType) ToSQL(ctx *types.SQLContext) (string, error) {
	if sql, ok, err := dialectSQL(t, ctx); ok || err != nil {
		return sql, err
	}
	return renderNumberSQL(t.key, t.opts), nil
}

func (t *FloatType) Validate(value any) error {
	if utils.IsFloatValue(value) {
		return nil
	}
	return types.NewValidationError(value, fmt.Sprintf("a valid %s", strings.ToLower(t.key)))
}

func (t *FloatType) Stringify(value any, ctx *types.StringifyContext) (string, error) {
	if token, ok := specialFloatToken(value); ok {
		return "'" + token + "'", nil
	}
	return utils.ToString(value), nil
}

func (t *FloatType) BindParam(value any, ctx *types.BindParamContext) (string, error) {
	if ctx == nil || ctx.BindParam == nil {
		return "", types.NewConfigurationError("bind parameter context has no binder")
	}
	if token, ok := specialFloatToken(value); ok {
		return ctx.BindParam(token), nil
	}
	return ctx.BindParam(value), nil
}

// specialFloatToken maps NaN and the infinities to their literal tokens.
// These are not standard numeric literals, so the float family emits them
// as quoted text instead of numeric formatting.
func specialFloatToken(value any) (string, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return "", false
	}
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "Infinity", true
	case math.IsInf(f, -1):
		return "-Infinity", true
	default:
		return "", false
	}
}

// renderNumberSQL builds KEY(length[,decimals]) [UNSIGNED] [ZEROFILL],
// omitting empty parenthetical groups.
func renderNumberSQL(keyword string, opts NumberOptions) string {
	sql := keyword
	if opts.Length > 0 && opts.Decimals > 0 {
		sql += fmt.Sprintf("(%d,%d)", opts.Length, opts.Decimals)
	} else if opts.Length > 0 {
		sql += fmt.Sprintf("(%d)", opts.Length)
	}
	if opts.Unsigned {
		sql += " UNSIGNED"
	}
	if opts.Zerofill {
		sql += " ZEROFILL"
	}
	return sql
}

// Pre-built default-configuration descriptors.
var (
	TinyInt   = NewTinyInt(NumberOptions{})
	SmallInt  = NewSmallInt(NumberOptions{})
	MediumInt = NewMediumInt(NumberOptions{})
	Integer   = NewInteger(NumberOptions{})
	BigInt    = NewBigInt(NumberOptions{})
	Float     = NewFloat(NumberOptions{})
	Real      = NewReal(NumberOptions{})
	Double    = NewDouble(NumberOptions{})
)

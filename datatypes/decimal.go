package datatypes

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/abeai/sequelize/types"
	"github.com/abeai/sequelize/utils"
)

// DecimalType renders an exact fixed-point DECIMAL column. Unlike the
// float family it uses precision/scale rather than length/decimals.
type DecimalType struct {
	base
	precision int
	scale     int
	unsigned  bool
	zerofill  bool
}

// NewDecimal creates a DECIMAL descriptor. Zero precision renders the
// bare keyword.
func NewDecimal(precision, scale int) *DecimalType {
	return &DecimalType{base: newBase("DECIMAL"), precision: precision, scale: scale}
}

// Precision returns the configured precision, 0 when unset
func (t *DecimalType) Precision() int {
	return t.precision
}

// Scale returns the configured scale, 0 when unset
func (t *DecimalType) Scale() int {
	return t.scale
}

// Unsigned derives a copy with the UNSIGNED modifier set
func (t *DecimalType) Unsigned() *DecimalType {
	c := *t
	c.unsigned = true
	return &c
}

// Zerofill derives a copy with the ZEROFILL modifier set
func (t *DecimalType) Zerofill() *DecimalType {
	c := *t
	c.zerofill = true
	return &c
}

func (t *DecimalType) ToSQL(ctx *types.SQLContext) (string, error) {
	if sql, ok, err := dialectSQL(t, ctx); ok || err != nil {
		return sql, err
	}
	sql := "DECIMAL"
	if t.precision > 0 && t.scale > 0 {
		sql += fmt.Sprintf("(%d,%d)", t.precision, t.scale)
	} else if t.precision > 0 {
		sql += fmt.Sprintf("(%d)", t.precision)
	}
	if t.unsigned {
		sql += " UNSIGNED"
	}
	if t.zerofill {
		sql += " ZEROFILL"
	}
	return sql, nil
}

func (t *DecimalType) Validate(value any) error {
	switch v := value.(type) {
	case decimal.Decimal:
		return nil
	case float64:
		// NaN and the infinities belong to the float family's token
		// path; an exact type has no representation for them.
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return nil
		}
	case float32:
		return t.Validate(float64(v))
	case string:
		if _, err := decimal.NewFromString(v); err == nil {
			return nil
		}
	case []byte:
		if _, err := decimal.NewFromString(string(v)); err == nil {
			return nil
		}
	default:
		if utils.IsIntegerValue(value) {
			return nil
		}
	}
	return types.NewValidationError(value, "a valid decimal")
}

func (t *DecimalType) Stringify(value any, ctx *types.StringifyContext) (string, error) {
	// Canonicalize through an exact decimal parse so "1.230" and 1.23
	// render identically.
	if d, ok := value.(decimal.Decimal); ok {
		return d.String(), nil
	}
	d, err := decimal.NewFromString(utils.ToString(value))
	if err != nil {
		return "", types.NewValidationError(value, "a valid decimal")
	}
	return d.String(), nil
}

// Decimal is the pre-built bare DECIMAL descriptor.
var Decimal = NewDecimal(0, 0)

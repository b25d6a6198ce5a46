package datatypes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abeai/sequelize/types"
)

func TestIntegerToSQL(t *testing.T) {
	tests := []struct {
		name     string
		dt       *IntegerType
		expected string
	}{
		{"default integer", Integer, "INTEGER"},
		{"tinyint", TinyInt, "TINYINT"},
		{"smallint", SmallInt, "SMALLINT"},
		{"mediumint", MediumInt, "MEDIUMINT"},
		{"bigint", BigInt, "BIGINT"},
		{"with length", NewInteger(NumberOptions{Length: 11}), "INTEGER(11)"},
		{"unsigned", NewInteger(NumberOptions{Unsigned: true}), "INTEGER UNSIGNED"},
		{"zerofill", NewInteger(NumberOptions{Zerofill: true}), "INTEGER ZEROFILL"},
		{"everything", NewBigInt(NumberOptions{Length: 20, Unsigned: true, Zerofill: true}), "BIGINT(20) UNSIGNED ZEROFILL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := tt.dt.ToSQL(nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sql)
		})
	}
}

func TestIntegerModifierDerivation(t *testing.T) {
	original := NewInteger(NumberOptions{})
	derived := original.Unsigned().Zerofill()

	sql, err := derived.ToSQL(nil)
	require.NoError(t, err)
	assert.Equal(t, "INTEGER UNSIGNED ZEROFILL", sql)

	// The original instance is untouched.
	sql, err = original.ToSQL(nil)
	require.NoError(t, err)
	assert.Equal(t, "INTEGER", sql)
}

func TestModifierPathsAreEquivalent(t *testing.T) {
	// Deriving from the pre-built default and constructing with options
	// set must yield option-equivalent descriptors.
	derived := Integer.Unsigned()
	constructed := NewInteger(NumberOptions{Unsigned: true})

	assert.Equal(t, constructed.Options(), derived.Options())
	assert.Equal(t, NumberOptions{}, Integer.Options(), "pre-built default must stay untouched")
}

func TestIntegerValidate(t *testing.T) {
	tests := []struct {
		name  string
		value any
		valid bool
	}{
		{"int", 42, true},
		{"integer string", "42", true},
		{"integral float", 3.0, true},
		{"fractional string", "3.14", false},
		{"fractional float", 3.14, false},
		{"word", "foobar", false},
		{"bool", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Integer.Validate(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				var validationErr *types.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.value, validationErr.Value)
				assert.Contains(t, err.Error(), "integer")
			}
		})
	}
}

func TestFloatValidate(t *testing.T) {
	// "3.14" is accepted by FLOAT but rejected by INTEGER.
	assert.NoError(t, Float.Validate("3.14"))
	assert.Error(t, Integer.Validate("3.14"))

	assert.NoError(t, Double.Validate(3.14))
	assert.NoError(t, Real.Validate("42"))
}

func TestFloatToSQL(t *testing.T) {
	sql, err := NewFloat(NumberOptions{Length: 11, Decimals: 10}).ToSQL(nil)
	require.NoError(t, err)
	assert.Equal(t, "FLOAT(11,10)", sql)

	sql, err = Double.ToSQL(nil)
	require.NoError(t, err)
	assert.Equal(t, "DOUBLE", sql)

	sql, err = NewReal(NumberOptions{Length: 11}).Unsigned().ToSQL(nil)
	require.NoError(t, err)
	assert.Equal(t, "REAL(11) UNSIGNED", sql)
}

func TestFloatStringifySpecialValues(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"NaN", math.NaN(), "'NaN'"},
		{"positive infinity", math.Inf(1), "'Infinity'"},
		{"negative infinity", math.Inf(-1), "'-Infinity'"},
		{"plain float", 3.14, "3.14"},
		{"numeric string", "3.14", "3.14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Float.Stringify(tt.value, stringifyCtx())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	// The quoted tokens are final literals; no further escaping applies.
	assert.False(t, Float.NeedsEscape())
	assert.False(t, Double.NeedsEscape())
}

func TestFloatBindParamSpecialValues(t *testing.T) {
	var bound []any
	out, err := Double.BindParam(math.Inf(-1), bindCtx(&bound))
	require.NoError(t, err)
	assert.Equal(t, "$1", out)
	require.Len(t, bound, 1)
	assert.Equal(t, "-Infinity", bound[0], "special values bind as their literal tokens")

	bound = nil
	_, err = Double.BindParam(2.5, bindCtx(&bound))
	require.NoError(t, err)
	require.Len(t, bound, 1)
	assert.Equal(t, 2.5, bound[0])
}

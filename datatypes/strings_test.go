package datatypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abeai/sequelize/types"
)

func TestStringToSQL(t *testing.T) {
	tests := []struct {
		name     string
		dt       types.DataType
		expected string
	}{
		{"default string", String, "VARCHAR(255)"},
		{"explicit length", NewString(100), "VARCHAR(100)"},
		{"binary", NewString(0).Binary(), "VARCHAR(255) BINARY"},
		{"default char", Char, "CHAR(255)"},
		{"char with length", NewChar(12), "CHAR(12)"},
		{"char binary", NewChar(12).Binary(), "CHAR(12) BINARY"},
		{"text", Text, "TEXT"},
		{"tiny text", NewText(TextTiny), "TINYTEXT"},
		{"medium text", NewText(TextMedium), "MEDIUMTEXT"},
		{"long text", NewText(TextLong), "LONGTEXT"},
		{"citext", Citext, "CITEXT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := tt.dt.ToSQL(nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sql)
		})
	}
}

func TestStringBinaryDerivation(t *testing.T) {
	original := NewString(100)
	derived := original.Binary()

	assert.True(t, derived.IsBinary())
	assert.False(t, original.IsBinary(), "original instance stays untouched")
	assert.Equal(t, 100, derived.Length(), "derivation keeps prior options")
}

func TestStringValidate(t *testing.T) {
	assert.NoError(t, String.Validate("hello"))
	assert.NoError(t, String.Validate([]byte{0x01}))

	err := String.Validate(42)
	var validationErr *types.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 42, validationErr.Value)

	assert.Error(t, Text.Validate(42))
	assert.Error(t, Citext.Validate(nil))
}

func TestStringStringify(t *testing.T) {
	out, err := String.Stringify("hello", stringifyCtx())
	require.NoError(t, err)
	assert.Equal(t, "hello", out, "strings pass through; quoting is the caller's job")
	assert.True(t, String.NeedsEscape())
}

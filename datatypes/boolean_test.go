package datatypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abeai/sequelize/types"
)

func TestBooleanSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected any
	}{
		// Single-bit buffers from BIT(1) columns.
		{"buffer one", []byte{1}, true},
		{"buffer zero", []byte{0}, false},
		{"buffer ascii one", []byte("1"), true},

		// Literal text.
		{"text true", "true", true},
		{"text false", "false", false},
		{"text one", "1", true},
		{"text zero", "0", false},

		// Numbers.
		{"int one", 1, true},
		{"int zero", 0, false},
		{"int64 one", int64(1), true},

		// Booleans pass through.
		{"bool", true, true},

		// Unrecognized representations become nil, never an error.
		{"out of range number", 2, nil},
		{"word", "yes", nil},
		{"long buffer", []byte{1, 0}, nil},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Boolean.Sanitize(tt.input, nil))
		})
	}
}

func TestBooleanSanitizeRaw(t *testing.T) {
	raw := &types.SanitizeOptions{Raw: true}
	assert.Equal(t, []byte{1}, Boolean.Sanitize([]byte{1}, raw))
}

func TestBooleanValidate(t *testing.T) {
	assert.NoError(t, Boolean.Validate(true))
	assert.NoError(t, Boolean.Validate("false"))
	assert.NoError(t, Boolean.Validate(1))
	assert.NoError(t, Boolean.Validate("0"))

	var validationErr *types.ValidationError
	require.ErrorAs(t, Boolean.Validate(2), &validationErr)
	assert.Error(t, Boolean.Validate("yes"))
	assert.Error(t, Boolean.Validate(nil))
}

func TestBooleanToSQL(t *testing.T) {
	sql, err := Boolean.ToSQL(nil)
	require.NoError(t, err)
	assert.Equal(t, "BOOLEAN", sql)
}

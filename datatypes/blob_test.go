package datatypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abeai/sequelize/types"
)

func TestBlobToSQL(t *testing.T) {
	tests := []struct {
		name     string
		dt       *BlobType
		expected string
	}{
		{"default", Blob, "BLOB"},
		{"tiny", NewBlob(BlobTiny), "TINYBLOB"},
		{"medium", NewBlob(BlobMedium), "MEDIUMBLOB"},
		{"long", NewBlob(BlobLong), "LONGBLOB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := tt.dt.ToSQL(nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sql)
		})
	}
}

func TestBlobStringify(t *testing.T) {
	out, err := Blob.Stringify([]byte{0xDE, 0xAD, 0xBE, 0xEF}, stringifyCtx())
	require.NoError(t, err)
	assert.Equal(t, "X'DEADBEEF'", out)

	out, err = Blob.Stringify("ab", stringifyCtx())
	require.NoError(t, err)
	assert.Equal(t, "X'6162'", out)

	// The hex literal self-quotes.
	assert.False(t, Blob.NeedsEscape())
}

func TestBlobBindParam(t *testing.T) {
	var bound []any
	out, err := Blob.BindParam([]byte{0x01}, bindCtx(&bound))
	require.NoError(t, err)
	assert.Equal(t, "$1", out)
	require.Len(t, bound, 1)
	assert.Equal(t, []byte{0x01}, bound[0])

	// String input reaches the driver as bytes.
	bound = nil
	_, err = Blob.BindParam("ab", bindCtx(&bound))
	require.NoError(t, err)
	require.Len(t, bound, 1)
	assert.Equal(t, []byte("ab"), bound[0])
}

func TestBlobValidate(t *testing.T) {
	assert.NoError(t, Blob.Validate([]byte{0x01}))
	assert.NoError(t, Blob.Validate("raw"))

	err := Blob.Validate(42)
	var validationErr *types.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

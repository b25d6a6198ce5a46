package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abeai/sequelize/datatypes"
	"github.com/abeai/sequelize/types"
)

func sqliteCtx() *types.SQLContext {
	Register()
	return &types.SQLContext{Dialect: types.DialectSQLite}
}

func TestSQLiteTypeMapping(t *testing.T) {
	ctx := sqliteCtx()

	enum, err := datatypes.NewEnum("a", "b")
	require.NoError(t, err)

	tests := []struct {
		name     string
		dt       types.DataType
		expected string
	}{
		{"string stays default", datatypes.String, "VARCHAR(255)"},
		{"json is text affinity", datatypes.JSON, "TEXT"},
		{"jsonb is text affinity", datatypes.JSONB, "TEXT"},
		{"hstore falls back", datatypes.Hstore, "TEXT"},
		{"enum falls back", enum, "TEXT"},
		{"citext keeps case folding", datatypes.Citext, "TEXT COLLATE NOCASE"},
		{"boolean", datatypes.Boolean, "TINYINT(1)"},
		{"uuid is text affinity", datatypes.UUID, "TEXT"},
		{"uuidv4 is text affinity", datatypes.UUIDV4, "TEXT"},
		{"date stays default", datatypes.Date, "DATETIME"},
		{"inet falls back", datatypes.INET, "TEXT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := tt.dt.ToSQL(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sql)
		})
	}
}

func TestSQLiteCapabilities(t *testing.T) {
	caps := NewCapabilities()

	assert.Equal(t, "`users`", caps.QuoteIdentifier("users"))
	assert.Equal(t, "?", caps.GetPlaceholder(1))
	assert.Equal(t, "'O''Reilly'", caps.EscapeString("O'Reilly"))
	assert.Equal(t, `'a\b'`, caps.EscapeString(`a\b`), "sqlite does not use backslash escapes")
	assert.Equal(t, "1", caps.GetBooleanLiteral(true))
	assert.Equal(t, "0", caps.GetBooleanLiteral(false))
	assert.Equal(t, types.DialectSQLite, caps.GetDialect())

	var _ types.DialectCapabilities = caps
}

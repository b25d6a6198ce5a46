package datatypes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abeai/sequelize/registry"
	"github.com/abeai/sequelize/types"
)

// testEscape is the quoting function the query layer would normally
// supply: single quotes doubled, result wrapped in quotes.
func testEscape(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func stringifyCtx() *types.StringifyContext {
	return &types.StringifyContext{Escape: testEscape}
}

// bindCtx returns a BindParamContext that collects bound values and
// hands out $n placeholders.
func bindCtx(bound *[]any) *types.BindParamContext {
	return &types.BindParamContext{
		StringifyContext: types.StringifyContext{Escape: testEscape},
		BindParam: func(v any) string {
			*bound = append(*bound, v)
			return "$1"
		},
	}
}

func TestBaseToSQLRequiresKey(t *testing.T) {
	_, err := base{}.ToSQL(nil)
	require.Error(t, err)

	var configErr *types.ConfigurationError
	assert.ErrorAs(t, err, &configErr)
}

func TestBaseToSQLUsesDialectOverride(t *testing.T) {
	registry.Register("base-test-dialect", "TSVECTOR", registry.TypeOverride{SQL: "TEXT"})

	sql, err := TSVector.ToSQL(&types.SQLContext{Dialect: "base-test-dialect"})
	require.NoError(t, err)
	assert.Equal(t, "TEXT", sql)

	// No context means default rendering.
	sql, err = TSVector.ToSQL(nil)
	require.NoError(t, err)
	assert.Equal(t, "TSVECTOR", sql)
}

func TestBaseBindParamRequiresBinder(t *testing.T) {
	_, err := Text.BindParam("x", &types.BindParamContext{})
	require.Error(t, err)

	var configErr *types.ConfigurationError
	assert.ErrorAs(t, err, &configErr)
}

func TestIsType(t *testing.T) {
	assert.True(t, IsType(Integer, "INTEGER"))
	assert.False(t, IsType(Integer, "BIGINT"))
	assert.False(t, IsType(nil, "INTEGER"))
}

func TestExtendClones(t *testing.T) {
	original := NewInteger(NumberOptions{Length: 11, Unsigned: true})
	clone := Extend(original)

	intClone, ok := clone.(*IntegerType)
	require.True(t, ok)
	assert.NotSame(t, original, intClone)
	assert.Equal(t, original.Options(), intClone.Options())
}

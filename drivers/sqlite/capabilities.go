package sqlite

import (
	"fmt"
	"strings"

	"github.com/abeai/sequelize/types"
)

// Capabilities implements types.DialectCapabilities for SQLite
type Capabilities struct{}

// NewCapabilities creates new SQLite capabilities
func NewCapabilities() *Capabilities {
	return &Capabilities{}
}

// Identifier quoting

func (c *Capabilities) QuoteIdentifier(name string) string {
	return fmt.Sprintf("`%s`", name)
}

func (c *Capabilities) GetPlaceholder(index int) string {
	return "?"
}

// Literal conversion

// EscapeString returns the fully quoted SQLite literal form of a string.
// SQLite only requires quote doubling, no backslash escapes.
func (c *Capabilities) EscapeString(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

func (c *Capabilities) GetBooleanLiteral(value bool) string {
	if value {
		return "1"
	}
	return "0"
}

// Dialect identification

func (c *Capabilities) GetDialect() types.Dialect {
	return types.DialectSQLite
}

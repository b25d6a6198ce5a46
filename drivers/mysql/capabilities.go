package mysql

import (
	"fmt"
	"strings"

	"github.com/abeai/sequelize/types"
)

// Capabilities implements types.DialectCapabilities for MySQL
type Capabilities struct{}

// NewCapabilities creates new MySQL capabilities
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

// mysqlEscaper doubles quotes and escapes the characters the MySQL
// protocol treats specially inside string literals.
var mysqlEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `''`,
	"\x00", `\0`,
	"\n", `\n`,
	"\r", `\r`,
	"\x1a", `\Z`,
)

// EscapeString returns the fully quoted MySQL literal form of a string.
func (c *Capabilities) EscapeString(value string) string {
	return "'" + mysqlEscaper.Replace(value) + "'"
}

func (c *Capabilities) GetBooleanLiteral(value bool) string {
	if value {
		return "true"
	}
	return "false"
}

// Dialect identification

func (c *Capabilities) GetDialect() types.Dialect {
	return types.DialectMySQL
}

package mssql

import (
	"fmt"
	"strings"

	"github.com/abeai/sequelize/types"
)

// Capabilities implements types.DialectCapabilities for SQL Server
type Capabilities struct{}

// NewCapabilities creates new SQL Server capabilities
func NewCapabilities() *Capabilities {
	return &Capabilities{}
}

// Identifier quoting

func (c *Capabilities) QuoteIdentifier(name string) string {
	return fmt.Sprintf("[%s]", name)
}

func (c *Capabilities) GetPlaceholder(index int) string {
	return fmt.Sprintf("@p%d", index)
}

// Literal conversion

// EscapeString returns the fully quoted SQL Server literal form of a
// string, using the N prefix so Unicode text round-trips.
func (c *Capabilities) EscapeString(value string) string {
	return "N'" + strings.ReplaceAll(value, "'", "''") + "'"
}

func (c *Capabilities) GetBooleanLiteral(value bool) string {
	if value {
		return "1"
	}
	return "0"
}

// Dialect identification

func (c *Capabilities) GetDialect() types.Dialect {
	return types.DialectMSSQL
}

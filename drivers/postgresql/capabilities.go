package postgresql

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/abeai/sequelize/types"
)

// Capabilities implements types.DialectCapabilities for PostgreSQL
type Capabilities struct{}

// NewCapabilities creates new PostgreSQL capabilities
func NewCapabilities() *Capabilities {
	return &Capabilities{}
}

// Identifier quoting

func (c *Capabilities) QuoteIdentifier(name string) string {
	return fmt.Sprintf(`"%s"`, name)
}

func (c *Capabilities) GetPlaceholder(index int) string {
	return fmt.Sprintf("$%d", index)
}

// Literal conversion

// EscapeString quotes a literal through lib/pq, which handles embedded
// quotes and backslash-escape promotion (E'...') correctly.
func (c *Capabilities) EscapeString(value string) string {
	return pq.QuoteLiteral(value)
}

func (c *Capabilities) GetBooleanLiteral(value bool) string {
	if value {
		return "TRUE"
	}
	return "FALSE"
}

// Dialect identification

func (c *Capabilities) GetDialect() types.Dialect {
	return types.DialectPostgres
}

package types

// DialectCapabilities defines the quoting and literal conventions of a
// SQL dialect. Each dialect package provides an implementation; the
// EscapeString method is a ready-made StringifyContext.Escape.
type DialectCapabilities interface {
	// Identifier quoting
	QuoteIdentifier(name string) string
	GetPlaceholder(index int) string

	// Literal conversion
	// EscapeString returns the fully quoted literal form of a string,
	// including the surrounding quotes.
	EscapeString(value string) string
	GetBooleanLiteral(value bool) string

	// Dialect identification
	GetDialect() Dialect
}

package types

// Dialect identifies a SQL database family whose type rendering and
// literal quoting differ from others.
// It's defined as a string to allow extensibility for new dialects.
type Dialect string

// Well-known dialects (for convenience and documentation)
const (
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
	DialectSQLite   Dialect = "sqlite"
	DialectMSSQL    Dialect = "mssql"
)

// String returns the string representation of the dialect
func (d Dialect) String() string {
	return string(d)
}

// SQLContext carries dialect information into ToSQL. A nil context or an
// empty dialect means the descriptor renders its default declaration.
type SQLContext struct {
	Dialect Dialect
}

// StringifyContext supplies what a descriptor needs to render a value as
// literal SQL text. It is provided by the query-generation layer.
type StringifyContext struct {
	// Escape quotes a string for inline inclusion in SQL and must be
	// supplied by the caller; descriptors never quote on their own
	// unless NeedsEscape reports false.
	Escape func(string) string

	// Timezone controls temporal rendering. Accepts an IANA zone name
	// ("America/New_York") or a fixed UTC offset ("+05:30"). Empty means
	// UTC; the ambient process zone is never consulted.
	Timezone string

	// Operation and Field are optional hints about the query being built.
	Operation string
	Field     string

	// Dialect selects dialect-specific literal forms (e.g. the geometry
	// function wrapper). Empty means the default form.
	Dialect Dialect
}

// BindParamContext extends StringifyContext with a driver binder.
type BindParamContext struct {
	StringifyContext

	// BindParam registers a value with the driver and returns the
	// placeholder token that stands for it in the statement text.
	BindParam func(value any) string
}

// SanitizeOptions controls value normalization.
type SanitizeOptions struct {
	// Raw skips normalization and returns the driver value unchanged.
	Raw bool
}

// DataType is the contract every type descriptor implements. Descriptors
// are immutable once constructed: deriving a variant (UNSIGNED, BINARY,
// a different length) always produces a new instance.
//
// All methods are pure functions of the value and the descriptor's frozen
// configuration, safe for unrestricted concurrent use.
type DataType interface {
	// Key returns the taxonomy identifier, e.g. "STRING" or "DECIMAL".
	Key() string

	// ToSQL renders the dialect-appropriate column type declaration.
	// Dialect overrides registered for this descriptor's key take
	// precedence over the default rendering.
	ToSQL(ctx *SQLContext) (string, error)

	// Validate reports a *ValidationError when the value is not
	// acceptable for this type, nil otherwise.
	Validate(value any) error

	// Stringify converts an accepted value into literal SQL text.
	Stringify(value any, ctx *StringifyContext) (string, error)

	// BindParam converts an accepted value into its placeholder-bound
	// form via the context's binder.
	BindParam(value any, ctx *BindParamContext) (string, error)

	// Sanitize normalizes a raw driver value into the representation
	// this type's consumers expect. Identity by default.
	Sanitize(value any, opts *SanitizeOptions) any

	// AreValuesEqual reports whether two values are the same for dirty
	// tracking purposes.
	AreValuesEqual(a, b any) bool

	// NeedsEscape reports whether Stringify output must still be quoted
	// by the caller. Types whose literals self-quote (floats, blobs,
	// geometry) report false.
	NeedsEscape() bool
}

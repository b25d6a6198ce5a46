package datatypes

import (
	"fmt"
	"strings"

	"github.com/abeai/sequelize/types"
)

// EnumOptions is the tagged configuration form of an ENUM definition.
type EnumOptions struct {
	Values []string
}

// EnumType restricts a column to an ordered list of unique string members.
type EnumType struct {
	base
	values []string
}

// NewEnum builds an ENUM from its member list. A slice works through
// variadic expansion, so NewEnum("a", "b") and NewEnum(members...) are
// the same calling convention. Construction fails fast on an empty or
// malformed list; the error is a *types.ConfigurationError.
func NewEnum(values ...string) (*EnumType, error) {
	if len(values) == 0 {
		return nil, types.NewConfigurationError("ENUM requires at least one value")
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			return nil, types.NewConfigurationError("ENUM values must be non-empty strings")
		}
		if _, dup := seen[v]; dup {
			return nil, types.NewConfigurationError("ENUM values must be unique, %q appears twice", v)
		}
		seen[v] = struct{}{}
	}
	canonical := make([]string, len(values))
	copy(canonical, values)
	return &EnumType{base: newBase("ENUM"), values: canonical}, nil
}

// NewEnumFromOptions builds an ENUM from a tagged options struct. It
// yields a descriptor identical to the variadic form.
func NewEnumFromOptions(opts EnumOptions) (*EnumType, error) {
	return NewEnum(opts.Values...)
}

func (t *EnumType) ToSQL(ctx *types.SQLContext) (string, error) {
	if sql, ok, err := dialectSQL(t, ctx); ok || err != nil {
		return sql, err
	}
	return "ENUM", nil
}

// Values returns a copy of the canonical member list
func (t *EnumType) Values() []string {
	out := make([]string, len(t.values))
	copy(out, t.values)
	return out
}

// Validate tests exact membership; only strings can match, a numeric 1
// never equals the member "1".
func (t *EnumType) Validate(value any) error {
	if s, ok := value.(string); ok {
		for _, member := range t.values {
			if s == member {
				return nil
			}
		}
	}
	return types.NewValidationError(value, fmt.Sprintf("a valid choice in [%s]", quoteMembers(t.values)))
}

// quoteMembers renders the allowed list for error messages and MySQL
// declarations: each member single-quoted with embedded quotes doubled.
func quoteMembers(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return strings.Join(quoted, ", ")
}

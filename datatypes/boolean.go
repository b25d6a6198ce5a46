package datatypes

import (
	"github.com/abeai/sequelize/types"
	"github.com/abeai/sequelize/utils"
)

// BooleanType stores a tri-state boolean. Drivers hand back booleans in
// several shapes (single-bit buffers, 0/1 numbers, literal text), all of
// which Sanitize folds into bool-or-nil.
type BooleanType struct {
	base
}

// NewBoolean creates a BOOLEAN descriptor
func NewBoolean() *BooleanType {
	return &BooleanType{base: newBase("BOOLEAN")}
}

func (t *BooleanType) Validate(value any) error {
	switch v := value.(type) {
	case bool:
		return nil
	case string:
		if v == "true" || v == "false" || v == "0" || v == "1" {
			return nil
		}
	default:
		if utils.IsIntegerValue(value) {
			s := utils.ToString(value)
			if s == "0" || s == "1" {
				return nil
			}
		}
	}
	return types.NewValidationError(value, "a valid boolean")
}

// Sanitize maps a raw driver value to true, false or nil. Unrecognized
// representations become nil rather than an error.
func (t *BooleanType) Sanitize(value any, opts *types.SanitizeOptions) any {
	if opts != nil && opts.Raw {
		return value
	}
	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		return v
	case []byte:
		// Single-bit buffer from BIT(1) columns.
		if len(v) == 1 {
			switch v[0] {
			case 0, '0':
				return false
			case 1, '1':
				return true
			}
		}
		return sanitizeBooleanText(string(v))
	case string:
		return sanitizeBooleanText(v)
	default:
		if utils.IsIntegerValue(value) {
			switch utils.ToString(value) {
			case "0":
				return false
			case "1":
				return true
			}
		}
		return nil
	}
}

func sanitizeBooleanText(s string) any {
	switch s {
	case "true", "1":
		return true
	case "false", "0":
		return false
	default:
		return nil
	}
}

// Boolean is the pre-built BOOLEAN descriptor.
var Boolean = NewBoolean()

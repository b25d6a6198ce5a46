package datatypes

import (
	"fmt"

	"github.com/abeai/sequelize/types"
	"github.com/abeai/sequelize/utils"
)

// DefaultStringLength is used when a string descriptor is built without an
// explicit length.
const DefaultStringLength = 255

// StringType renders a VARCHAR column with an optional length and BINARY
// collation modifier.
type StringType struct {
	base
	length int
	binary bool
}

// NewString creates a STRING descriptor. A non-positive length means the
// default of 255.
func NewString(length int) *StringType {
	return &StringType{base: newBase("STRING"), length: length}
}

// Binary derives a copy with the BINARY modifier set. The receiver is
// left untouched.
func (t *StringType) Binary() *StringType {
	c := *t
	c.binary = true
	return &c
}

// Length returns the configured length, 0 when defaulted
func (t *StringType) Length() int {
	return t.length
}

// IsBinary reports whether the BINARY modifier is set
func (t *StringType) IsBinary() bool {
	return t.binary
}

func (t *StringType) ToSQL(ctx *types.SQLContext) (string, error) {
	if sql, ok, err := dialectSQL(t, ctx); ok || err != nil {
		return sql, err
	}
	return renderCharSQL("VARCHAR", t.length, t.binary), nil
}

func (t *StringType) Validate(value any) error {
	if _, ok := utils.ToBytes(value); ok {
		return nil
	}
	return types.NewValidationError(value, "a valid string")
}

// CharType renders a fixed-width CHAR column.
type CharType struct {
	base
	length int
	binary bool
}

// NewChar creates a CHAR descriptor. A non-positive length means the
// default of 255.
func NewChar(length int) *CharType {
	return &CharType{base: newBase("CHAR"), length: length}
}

// Binary derives a copy with the BINARY modifier set
func (t *CharType) Binary() *CharType {
	c := *t
	c.binary = true
	return &c
}

// Length returns the configured length, 0 when defaulted
func (t *CharType) Length() int {
	return t.length
}

// IsBinary reports whether the BINARY modifier is set
func (t *CharType) IsBinary() bool {
	return t.binary
}

func (t *CharType) ToSQL(ctx *types.SQLContext) (string, error) {
	if sql, ok, err := dialectSQL(t, ctx); ok || err != nil {
		return sql, err
	}
	return renderCharSQL("CHAR", t.length, t.binary), nil
}

func (t *CharType) Validate(value any) error {
	if _, ok := utils.ToBytes(value); ok {
		return nil
	}
	return types.NewValidationError(value, "a valid string")
}

// renderCharSQL builds the declaration shared by the character types.
func renderCharSQL(keyword string, length int, binary bool) string {
	if length <= 0 {
		length = DefaultStringLength
	}
	sql := fmt.Sprintf("%s(%d)", keyword, length)
	if binary {
		sql += " BINARY"
	}
	return sql
}

// TextSize selects the storage class of a TEXT column.
type TextSize string

const (
	TextDefault TextSize = ""
	TextTiny    TextSize = "tiny"
	TextMedium  TextSize = "medium"
	TextLong    TextSize = "long"
)

// TextType renders an unbounded text column with an optional size class.
type TextType struct {
	base
	size TextSize
}

// NewText creates a TEXT descriptor for the given size class.
func NewText(size TextSize) *TextType {
	return &TextType{base: newBase("TEXT"), size: size}
}

// Size returns the configured size class
func (t *TextType) Size() TextSize {
	return t.size
}

func (t *TextType) ToSQL(ctx *types.SQLContext) (string, error) {
	if sql, ok, err := dialectSQL(t, ctx); ok || err != nil {
		return sql, err
	}
	switch t.size {
	case TextTiny:
		return "TINYTEXT", nil
	case TextMedium:
		return "MEDIUMTEXT", nil
	case TextLong:
		return "LONGTEXT", nil
	default:
		return "TEXT", nil
	}
}

func (t *TextType) Validate(value any) error {
	if _, ok := utils.ToBytes(value); ok {
		return nil
	}
	return types.NewValidationError(value, "a valid string")
}

// CitextType is PostgreSQL's case-insensitive text type.
type CitextType struct {
	base
}

// NewCitext creates a CITEXT descriptor
func NewCitext() *CitextType {
	return &CitextType{base: newBase("CITEXT")}
}

func (t *CitextType) Validate(value any) error {
	if _, ok := utils.ToBytes(value); ok {
		return nil
	}
	return types.NewValidationError(value, "a valid string")
}

// Pre-built default-configuration descriptors.
var (
	String = NewString(0)
	Char   = NewChar(0)
	Text   = NewText(TextDefault)
	Citext = NewCitext()
)

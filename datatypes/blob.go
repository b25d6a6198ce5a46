package datatypes

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/abeai/sequelize/types"
	"github.com/abeai/sequelize/utils"
)

// BlobSize selects the storage class of a BLOB column.
type BlobSize string

const (
	BlobDefault BlobSize = ""
	BlobTiny    BlobSize = "tiny"
	BlobMedium  BlobSize = "medium"
	BlobLong    BlobSize = "long"
)

// BlobType stores raw binary payloads. Its literal form is a self-quoting
// hex string, so caller-side escaping is bypassed.
type BlobType struct {
	base
	size BlobSize
}

// NewBlob creates a BLOB descriptor for the given size class.
func NewBlob(size BlobSize) *BlobType {
	return &BlobType{base: newRawBase("BLOB"), size: size}
}

// Size returns the configured size class
func (t *BlobType) Size() BlobSize {
	return t.size
}

func (t *BlobType) ToSQL(ctx *types.SQLContext) (string, error) {
	if sql, ok, err := dialectSQL(t, ctx); ok || err != nil {
		return sql, err
	}
	switch t.size {
	case BlobTiny:
		return "TINYBLOB", nil
	case BlobMedium:
		return "MEDIUMBLOB", nil
	case BlobLong:
		return "LONGBLOB", nil
	default:
		return "BLOB", nil
	}
}

func (t *BlobType) Validate(value any) error {
	if _, ok := utils.ToBytes(value); ok {
		return nil
	}
	return types.NewValidationError(value, "a valid blob, expected a string or byte slice")
}

// Stringify renders the payload as a hex literal in the X'<hex>' form.
func (t *BlobType) Stringify(value any, ctx *types.StringifyContext) (string, error) {
	payload, ok := utils.ToBytes(value)
	if !ok {
		return "", types.NewValidationError(value, "a valid blob, expected a string or byte slice")
	}
	return fmt.Sprintf("X'%s'", strings.ToUpper(hex.EncodeToString(payload))), nil
}

// BindParam passes the raw binary payload through the caller's binder.
// String input is converted to bytes so drivers see one representation.
func (t *BlobType) BindParam(value any, ctx *types.BindParamContext) (string, error) {
	if ctx == nil || ctx.BindParam == nil {
		return "", types.NewConfigurationError("bind parameter context has no binder")
	}
	payload, ok := utils.ToBytes(value)
	if !ok {
		return "", types.NewValidationError(value, "a valid blob, expected a string or byte slice")
	}
	return ctx.BindParam(payload), nil
}

// Blob is the pre-built default-size BLOB descriptor.
var Blob = NewBlob(BlobDefault)

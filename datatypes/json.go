package datatypes

import (
	gojson "github.com/goccy/go-json"

	"github.com/abeai/sequelize/types"
)

// JSONType stores structured documents serialized as JSON text.
type JSONType struct {
	base
}

// NewJSON creates a JSON descriptor
func NewJSON() *JSONType {
	return &JSONType{base: newBase("JSON")}
}

func (t *JSONType) Stringify(value any, ctx *types.StringifyContext) (string, error) {
	encoded, err := gojson.Marshal(value)
	if err != nil {
		return "", types.NewValidationError(value, "a JSON-serializable value")
	}
	return string(encoded), nil
}

// JSONBType is the binary-storage variant of JSON. It shares all behavior
// with JSON except its key.
type JSONBType struct {
	JSONType
}

// NewJSONB creates a JSONB descriptor
func NewJSONB() *JSONBType {
	return &JSONBType{JSONType{base: newBase("JSONB")}}
}

// Pre-built default-configuration descriptors.
var (
	JSON  = NewJSON()
	JSONB = NewJSONB()
)

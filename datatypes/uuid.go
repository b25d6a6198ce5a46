package datatypes

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abeai/sequelize/types"
)

// UUIDType validates RFC 4122 UUID strings. A non-zero version pins the
// version nibble; the versioned variants double as "generate at
// default-value time" markers for the model layer.
type UUIDType struct {
	base
	version int
}

// NewUUID creates a UUID descriptor accepting any version
func NewUUID() *UUIDType {
	return &UUIDType{base: newBase("UUID")}
}

// NewUUIDV1 creates a marker descriptor for version-1 UUID defaults
func NewUUIDV1() *UUIDType {
	return &UUIDType{base: newBase("UUIDV1"), version: 1}
}

// NewUUIDV4 creates a marker descriptor for version-4 UUID defaults
func NewUUIDV4() *UUIDType {
	return &UUIDType{base: newBase("UUIDV4"), version: 4}
}

// Version returns the pinned UUID version, 0 when any is accepted
func (t *UUIDType) Version() int {
	return t.version
}

func (t *UUIDType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return types.NewValidationError(value, t.expectation())
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return types.NewValidationError(value, t.expectation())
	}
	if t.version != 0 && int(parsed.Version()) != t.version {
		return types.NewValidationError(value, t.expectation())
	}
	return nil
}

func (t *UUIDType) expectation() string {
	if t.version == 0 {
		return "a valid uuid"
	}
	return fmt.Sprintf("a valid uuid (version %d)", t.version)
}

// Pre-built default-configuration descriptors.
var (
	UUID   = NewUUID()
	UUIDV1 = NewUUIDV1()
	UUIDV4 = NewUUIDV4()
)

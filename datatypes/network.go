package datatypes

import (
	"net"
	"reflect"

	"github.com/abeai/sequelize/types"
	"github.com/abeai/sequelize/utils"
)

// CIDRType stores an IP network in CIDR notation.
type CIDRType struct {
	base
}

// NewCIDR creates a CIDR descriptor
func NewCIDR() *CIDRType {
	return &CIDRType{base: newBase("CIDR")}
}

func (t *CIDRType) Validate(value any) error {
	s := utils.ToString(value)
	if _, _, err := net.ParseCIDR(s); err == nil {
		return nil
	}
	return types.NewValidationError(value, "a valid CIDR")
}

// INETType stores a single IP address.
type INETType struct {
	base
}

// NewINET creates an INET descriptor
func NewINET() *INETType {
	return &INETType{base: newBase("INET")}
}

func (t *INETType) Validate(value any) error {
	if net.ParseIP(utils.ToString(value)) != nil {
		return nil
	}
	return types.NewValidationError(value, "a valid INET")
}

// MacAddrType stores a hardware MAC address.
type MacAddrType struct {
	base
}

// NewMacAddr creates a MACADDR descriptor
func NewMacAddr() *MacAddrType {
	return &MacAddrType{base: newBase("MACADDR")}
}

func (t *MacAddrType) Validate(value any) error {
	if _, err := net.ParseMAC(utils.ToString(value)); err == nil {
		return nil
	}
	return types.NewValidationError(value, "a valid MACADDR")
}

// HstoreType stores a flat key/value mapping. Member values are not
// type-checked here.
type HstoreType struct {
	base
}

// NewHstore creates an HSTORE descriptor
func NewHstore() *HstoreType {
	return &HstoreType{base: newBase("HSTORE")}
}

func (t *HstoreType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		return nil
	}
	return types.NewValidationError(value, "a valid hstore, expected a key/value mapping")
}

// TSVectorType stores PostgreSQL full-text search vectors as plain text.
type TSVectorType struct {
	base
}

// NewTSVector creates a TSVECTOR descriptor
func NewTSVector() *TSVectorType {
	return &TSVectorType{base: newBase("TSVECTOR")}
}

func (t *TSVectorType) Validate(value any) error {
	if _, ok := value.(string); ok {
		return nil
	}
	return types.NewValidationError(value, "a valid string")
}

// Pre-built default-configuration descriptors.
var (
	CIDR     = NewCIDR()
	INET     = NewINET()
	MacAddr  = NewMacAddr()
	Hstore   = NewHstore()
	TSVector = NewTSVector()
)

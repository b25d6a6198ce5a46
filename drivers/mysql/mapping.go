package mysql

import (
	"fmt"
	"strings"

	"github.com/abeai/sequelize/datatypes"
	"github.com/abeai/sequelize/registry"
	"github.com/abeai/sequelize/types"
)

// Register installs the MySQL type overrides. Registration is idempotent.
//
// MySQL type mapping notes:
// - JSONB collapses to the native JSON type (MySQL 5.7+)
// - BOOLEAN is TINYINT(1)
// - UUID has no native type and is stored as CHAR(36) BINARY
// - CITEXT has no equivalent; TEXT is the closest lossy rendering
// - the geometry literal wrapper is ST_GeomFromText
func Register() {
	registry.RegisterAll(types.DialectMySQL, map[string]registry.TypeOverride{
		"JSONB":   {SQL: "JSON"},
		"CITEXT":  {SQL: "TEXT"},
		"BOOLEAN": {SQL: "TINYINT(1)"},
		"UUID":    {SQL: "CHAR(36) BINARY"},
		"UUIDV1":  {SQL: "CHAR(36) BINARY"},
		"UUIDV4":  {SQL: "CHAR(36) BINARY"},

		"DATE": {Render: renderDate},

		"ENUM": {Render: renderEnum},

		"GEOMETRY":  {Render: renderGeometry, GeometryFunc: "ST_GeomFromText"},
		"GEOGRAPHY": {Render: renderGeometry, GeometryFunc: "ST_GeomFromText"},
	})
}

// renderDate applies the configured sub-second precision, which MySQL
// expresses in the declaration.
func renderDate(dt types.DataType) (string, error) {
	t, ok := dt.(*datatypes.DateType)
	if !ok {
		return "", types.NewConfigurationError("mysql DATE override applied to %T", dt)
	}
	if p := t.Precision(); p > 0 {
		return fmt.Sprintf("DATETIME(%d)", p), nil
	}
	return "DATETIME", nil
}

func renderEnum(dt types.DataType) (string, error) {
	t, ok := dt.(*datatypes.EnumType)
	if !ok {
		return "", types.NewConfigurationError("mysql ENUM override applied to %T", dt)
	}
	quoted := make([]string, 0, len(t.Values()))
	for _, v := range t.Values() {
		quoted = append(quoted, "'"+strings.ReplaceAll(v, "'", "''")+"'")
	}
	return fmt.Sprintf("ENUM(%s)", strings.Join(quoted, ", ")), nil
}

// renderGeometry uses the shape keyword when a kind is configured; MySQL
// declares columns as POINT, POLYGON etc. rather than GEOMETRY(POINT).
func renderGeometry(dt types.DataType) (string, error) {
	var opts datatypes.GeometryOptions
	switch t := dt.(type) {
	case *datatypes.GeometryType:
		opts = t.Options()
	case *datatypes.GeographyType:
		opts = t.Options()
	default:
		return "", types.NewConfigurationError("mysql geometry override applied to %T", dt)
	}
	if opts.Kind == datatypes.GeometryAny {
		return "GEOMETRY", nil
	}
	return strings.ToUpper(string(opts.Kind)), nil
}

package postgresql

import (
	"fmt"
	"strings"

	"github.com/abeai/sequelize/datatypes"
	"github.com/abeai/sequelize/registry"
	"github.com/abeai/sequelize/types"
)

// Register installs the PostgreSQL type overrides. Registration is
// idempotent, so calling it from several initialization paths is safe.
//
// PostgreSQL type mapping notes:
// - integer display widths, UNSIGNED and ZEROFILL do not exist; the
//   integer family collapses to SMALLINT/INTEGER/BIGINT
// - binary strings map to BYTEA
// - DATE (timestamp) maps to TIMESTAMP WITH TIME ZONE
// - ENUM is left on its default rendering because the named enum type is
//   created by the migration layer, which owns table context
func Register() {
	registry.RegisterAll(types.DialectPostgres, map[string]registry.TypeOverride{
		"STRING":  {Render: renderString},
		"CHAR":    {Render: renderChar},
		"TEXT":    {SQL: "TEXT"},
		"CITEXT":  {SQL: "CITEXT"},
		"TINYINT": {SQL: "SMALLINT"},

		"SMALLINT":  {SQL: "SMALLINT"},
		"MEDIUMINT": {SQL: "INTEGER"},
		"INTEGER":   {SQL: "INTEGER"},
		"BIGINT":    {SQL: "BIGINT"},
		"FLOAT":     {SQL: "FLOAT"},
		"REAL":      {SQL: "REAL"},
		"DOUBLE":    {SQL: "DOUBLE PRECISION"},
		"DECIMAL":   {Render: renderDecimal},

		"DATE":    {Render: renderDate},
		"UUID":    {SQL: "UUID"},
		"BOOLEAN": {SQL: "BOOLEAN"},
		"BLOB":    {SQL: "BYTEA"},

		"JSON":  {CastKey: "json"},
		"JSONB": {CastKey: "jsonb"},

		"HSTORE": {CastKey: "hstore"},

		"GEOMETRY":  {Render: renderGeometry, GeometryFunc: "ST_GeomFromText", CastKey: "geometry"},
		"GEOGRAPHY": {Render: renderGeometry, GeometryFunc: "ST_GeomFromText", CastKey: "geography"},

		"RANGE": {Render: renderRange},
	})
}

func renderString(dt types.DataType) (string, error) {
	t, ok := dt.(*datatypes.StringType)
	if !ok {
		return "", types.NewConfigurationError("postgres STRING override applied to %T", dt)
	}
	if t.IsBinary() {
		return "BYTEA", nil
	}
	length := t.Length()
	if length <= 0 {
		length = datatypes.DefaultStringLength
	}
	return fmt.Sprintf("VARCHAR(%d)", length), nil
}

func renderChar(dt types.DataType) (string, error) {
	t, ok := dt.(*datatypes.CharType)
	if !ok {
		return "", types.NewConfigurationError("postgres CHAR override applied to %T", dt)
	}
	if t.IsBinary() {
		return "BYTEA", nil
	}
	length := t.Length()
	if length <= 0 {
		length = datatypes.DefaultStringLength
	}
	return fmt.Sprintf("CHAR(%d)", length), nil
}

// renderDecimal drops the UNSIGNED/ZEROFILL modifiers PostgreSQL lacks.
func renderDecimal(dt types.DataType) (string, error) {
	t, ok := dt.(*datatypes.DecimalType)
	if !ok {
		return "", types.NewConfigurationError("postgres DECIMAL override applied to %T", dt)
	}
	if t.Precision() > 0 && t.Scale() > 0 {
		return fmt.Sprintf("DECIMAL(%d,%d)", t.Precision(), t.Scale()), nil
	}
	if t.Precision() > 0 {
		return fmt.Sprintf("DECIMAL(%d)", t.Precision()), nil
	}
	return "DECIMAL", nil
}

func renderDate(dt types.DataType) (string, error) {
	t, ok := dt.(*datatypes.DateType)
	if !ok {
		return "", types.NewConfigurationError("postgres DATE override applied to %T", dt)
	}
	if p := t.Precision(); p > 0 {
		return fmt.Sprintf("TIMESTAMP(%d) WITH TIME ZONE", p), nil
	}
	return "TIMESTAMP WITH TIME ZONE", nil
}

// renderGeometry emits the PostGIS parameterized form when a kind or SRID
// is configured.
func renderGeometry(dt types.DataType) (string, error) {
	var opts datatypes.GeometryOptions
	switch t := dt.(type) {
	case *datatypes.GeometryType:
		opts = t.Options()
	case *datatypes.GeographyType:
		opts = t.Options()
	default:
		return "", types.NewConfigurationError("postgres geometry override applied to %T", dt)
	}
	keyword := dt.Key()
	if opts.Kind == datatypes.GeometryAny {
		return keyword, nil
	}
	kind := strings.ToUpper(string(opts.Kind))
	if opts.SRID > 0 {
		return fmt.Sprintf("%s(%s,%d)", keyword, kind, opts.SRID), nil
	}
	return fmt.Sprintf("%s(%s)", keyword, kind), nil
}

func renderRange(dt types.DataType) (string, error) {
	t, ok := dt.(*datatypes.RangeType)
	if !ok {
		return "", types.NewConfigurationError("postgres RANGE override applied to %T", dt)
	}
	switch t.Subtype().Key() {
	case "INTEGER":
		return "int4range", nil
	case "BIGINT":
		return "int8range", nil
	case "DECIMAL":
		return "numrange", nil
	case "DATE":
		return "tstzrange", nil
	case "DATEONLY":
		return "daterange", nil
	default:
		return "", types.NewConfigurationError("no postgres range type for subtype %s", t.Subtype().Key())
	}
}

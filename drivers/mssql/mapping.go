package mssql

import (
	"fmt"

	"github.com/abeai/sequelize/datatypes"
	"github.com/abeai/sequelize/registry"
	"github.com/abeai/sequelize/types"
)

// Register installs the SQL Server type overrides. Registration is
// idempotent.
//
// SQL Server type mapping notes:
// - strings are NVARCHAR so Unicode round-trips; BINARY strings become
//   fixed BINARY columns
// - BOOLEAN is BIT, UUID is UNIQUEIDENTIFIER
// - there is no native JSON type; documents are stored as NVARCHAR(MAX)
// - UNSIGNED/ZEROFILL and integer display widths do not exist
func Register() {
	registry.RegisterAll(types.DialectMSSQL, map[string]registry.TypeOverride{
		"STRING": {Render: renderString},
		"TEXT":   {SQL: "NVARCHAR(MAX)"},
		"CITEXT": {SQL: "NVARCHAR(MAX)"},

		"TINYINT":   {SQL: "TINYINT"},
		"SMALLINT":  {SQL: "SMALLINT"},
		"MEDIUMINT": {SQL: "INT"},
		"INTEGER":   {SQL: "INT"},
		"BIGINT":    {SQL: "BIGINT"},
		"FLOAT":     {SQL: "FLOAT"},
		"REAL":      {SQL: "REAL"},
		"DOUBLE":    {SQL: "FLOAT"},

		"DATE":    {Render: renderDate},
		"BOOLEAN": {SQL: "BIT"},
		"UUID":    {SQL: "UNIQUEIDENTIFIER"},
		"UUIDV1":  {SQL: "UNIQUEIDENTIFIER"},
		"UUIDV4":  {SQL: "UNIQUEIDENTIFIER"},
		"BLOB":    {SQL: "VARBINARY(MAX)"},

		"JSON":  {SQL: "NVARCHAR(MAX)"},
		"JSONB": {SQL: "NVARCHAR(MAX)"},

		"ENUM": {SQL: "VARCHAR(255)"},
	})
}

func renderString(dt types.DataType) (string, error) {
	t, ok := dt.(*datatypes.StringType)
	if !ok {
		return "", types.NewConfigurationError("mssql STRING override applied to %T", dt)
	}
	length := t.Length()
	if length <= 0 {
		length = datatypes.DefaultStringLength
	}
	if t.IsBinary() {
		return fmt.Sprintf("BINARY(%d)", length), nil
	}
	return fmt.Sprintf("NVARCHAR(%d)", length), nil
}

func renderDate(dt types.DataType) (string, error) {
	t, ok := dt.(*datatypes.DateType)
	if !ok {
		return "", types.NewConfigurationError("mssql DATE override applied to %T", dt)
	}
	if p := t.Precision(); p > 0 {
		return fmt.Sprintf("DATETIMEOFFSET(%d)", p), nil
	}
	return "DATETIMEOFFSET", nil
}

package sqlite

import (
	"github.com/abeai/sequelize/registry"
	"github.com/abeai/sequelize/types"
)

// Register installs the SQLite type overrides. Registration is idempotent.
//
// SQLite stores by affinity, so the structured and PostgreSQL-specific
// types fall back to TEXT; everything the default rendering produces is
// already a valid SQLite declaration.
func Register() {
	registry.RegisterAll(types.DialectSQLite, map[string]registry.TypeOverride{
		"JSON":     {SQL: "TEXT"},
		"JSONB":    {SQL: "TEXT"},
		"HSTORE":   {SQL: "TEXT"},
		"TSVECTOR": {SQL: "TEXT"},
		"CITEXT":   {SQL: "TEXT COLLATE NOCASE"},
		"ENUM":     {SQL: "TEXT"},
		"UUID":     {SQL: "TEXT"},
		"UUIDV1":   {SQL: "TEXT"},
		"UUIDV4":   {SQL: "TEXT"},
		"BOOLEAN":  {SQL: "TINYINT(1)"},
		"CIDR":     {SQL: "TEXT"},
		"INET":     {SQL: "TEXT"},
		"MACADDR":  {SQL: "TEXT"},
	})
}

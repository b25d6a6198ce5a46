package registry

import (
	"sync"

	"github.com/abeai/sequelize/types"
	"github.com/abeai/sequelize/utils"
)

// TypeOverride is the per-dialect metadata registered against one
// descriptor key. Every field is optional; an absent field falls back to
// the descriptor's own behavior.
type TypeOverride struct {
	// SQL replaces the default column declaration verbatim.
	SQL string

	// Render replaces the declaration with dialect-specific logic that
	// may inspect the descriptor's options. Takes precedence over SQL.
	// Only register a Render for keys whose concrete descriptor type the
	// function type-asserts against.
	Render func(dt types.DataType) (string, error)

	// CastKey is the cast target the dialect applies to bound parameters
	// of this type, empty when no cast is needed.
	CastKey string

	// GeometryFunc overrides the function token wrapping WKT literals.
	// Only meaningful for the spatial keys.
	GeometryFunc string
}

// overrides holds all registered dialect metadata, keyed by dialect first
// and descriptor key second. Each (dialect, key) pair owns its own record;
// entries are never shared between keys, so a registration cannot leak
// onto another type in the same family.
var (
	overrides = make(map[types.Dialect]map[string]TypeOverride)
	mu        sync.RWMutex
)

// Register installs a dialect override for a descriptor key. Registration
// is idempotent: the first record for a (dialect, key) pair wins and later
// calls are ignored, which keeps concurrent first-use safe.
func Register(dialect types.Dialect, key string, override TypeOverride) {
	mu.Lock()
	defer mu.Unlock()

	byKey, ok := overrides[dialect]
	if !ok {
		byKey = make(map[string]TypeOverride)
		overrides[dialect] = byKey
	}

	if _, exists := byKey[key]; exists {
		utils.LogDebug("override for %s/%s already registered, ignoring", dialect, key)
		return
	}

	byKey[key] = override
	utils.LogDebug("registered %s override for %s", dialect, key)
}

// RegisterAll installs a batch of overrides for one dialect.
func RegisterAll(dialect types.Dialect, batch map[string]TypeOverride) {
	for key, override := range batch {
		Register(dialect, key, override)
	}
}

// Lookup retrieves the override registered for a (dialect, key) pair.
func Lookup(dialect types.Dialect, key string) (TypeOverride, bool) {
	mu.RLock()
	defer mu.RUnlock()

	byKey, ok := overrides[dialect]
	if !ok {
		return TypeOverride{}, false
	}
	override, ok := byKey[key]
	return override, ok
}

// Reset removes all registered overrides. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	overrides = make(map[types.Dialect]map[string]TypeOverride)
}

package datatypes

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"

	"github.com/abeai/sequelize/registry"
	"github.com/abeai/sequelize/types"
)

// GeometryKind names a geometry shape. An empty kind accepts any shape.
type GeometryKind string

const (
	GeometryAny        GeometryKind = ""
	GeometryPoint      GeometryKind = "Point"
	GeometryLineString GeometryKind = "LineString"
	GeometryPolygon    GeometryKind = "Polygon"
	GeometryMultiPoint GeometryKind = "MultiPoint"
	GeometryMultiLine  GeometryKind = "MultiLineString"
	GeometryMultiPoly  GeometryKind = "MultiPolygon"
	GeometryCollection GeometryKind = "GeometryCollection"
)

// GeometryOptions configures a spatial descriptor.
type GeometryOptions struct {
	// Kind constrains accepted shapes; empty accepts any.
	Kind GeometryKind
	// SRID is the spatial reference system of stored values, 0 when
	// unspecified.
	SRID int
}

// defaultGeometryFunc wraps WKT literals when no dialect override is
// registered.
const defaultGeometryFunc = "STGeomFromText"

// GeometryType stores spatial values. Input is GeoJSON in any of its
// common carriers (decoded geometry, raw bytes/text, generic map);
// literals are Well-Known Text wrapped in a dialect function call, which
// supplies its own quoting.
type GeometryType struct {
	base
	opts GeometryOptions
}

// NewGeometry creates a GEOMETRY descriptor
func NewGeometry(opts GeometryOptions) *GeometryType {
	return &GeometryType{base: newRawBase("GEOMETRY"), opts: opts}
}

// Options returns the frozen geometry options
func (t *GeometryType) Options() GeometryOptions {
	return t.opts
}

// ToSQL renders the descriptor key by default; GEOGRAPHY shares this
// method through embedding and renders its own key.
func (t *GeometryType) ToSQL(ctx *types.SQLContext) (string, error) {
	if sql, ok, err := dialectSQL(t, ctx); ok || err != nil {
		return sql, err
	}
	return t.Key(), nil
}

func (t *GeometryType) Validate(value any) error {
	geom, err := toGeometry(value)
	if err != nil {
		return types.NewValidationError(value, "a valid GeoJSON geometry")
	}
	if t.opts.Kind != GeometryAny && GeometryKind(geom.GeoJSONType()) != t.opts.Kind {
		return types.NewValidationError(value, fmt.Sprintf("a %s geometry", t.opts.Kind))
	}
	return nil
}

func (t *GeometryType) Stringify(value any, ctx *types.StringifyContext) (string, error) {
	text, err := t.toWKT(value)
	if err != nil {
		return "", err
	}
	if ctx == nil || ctx.Escape == nil {
		return "", types.NewConfigurationError("stringify context has no escape function")
	}
	wrapped := fmt.Sprintf("%s(%s", t.geometryFunc(ctx.Dialect), ctx.Escape(text))
	if t.opts.SRID > 0 {
		wrapped += fmt.Sprintf(",%d", t.opts.SRID)
	}
	return wrapped + ")", nil
}

// BindParam binds the WKT text and wraps the resulting placeholder in the
// dialect's geometry function.
func (t *GeometryType) BindParam(value any, ctx *types.BindParamContext) (string, error) {
	if ctx == nil || ctx.BindParam == nil {
		return "", types.NewConfigurationError("bind parameter context has no binder")
	}
	text, err := t.toWKT(value)
	if err != nil {
		return "", err
	}
	wrapped := fmt.Sprintf("%s(%s", t.geometryFunc(ctx.Dialect), ctx.BindParam(text))
	if t.opts.SRID > 0 {
		wrapped += fmt.Sprintf(",%d", t.opts.SRID)
	}
	return wrapped + ")", nil
}

func (t *GeometryType) toWKT(value any) (string, error) {
	geom, err := toGeometry(value)
	if err != nil {
		return "", types.NewValidationError(value, "a valid GeoJSON geometry")
	}
	return wkt.MarshalString(geom), nil
}

// geometryFunc returns the dialect's WKT wrapper token.
func (t *GeometryType) geometryFunc(dialect types.Dialect) string {
	if dialect != "" {
		if override, ok := registry.Lookup(dialect, t.Key()); ok && override.GeometryFunc != "" {
			return override.GeometryFunc
		}
	}
	return defaultGeometryFunc
}

// toGeometry normalizes the accepted GeoJSON carriers to an orb geometry.
func toGeometry(value any) (orb.Geometry, error) {
	switch v := value.(type) {
	case orb.Geometry:
		return v, nil
	case *geojson.Geometry:
		if v == nil {
			return nil, fmt.Errorf("nil geometry")
		}
		return v.Geometry(), nil
	case geojson.Geometry:
		return v.Geometry(), nil
	case []byte:
		decoded, err := geojson.UnmarshalGeometry(v)
		if err != nil {
			return nil, err
		}
		return decoded.Geometry(), nil
	case string:
		return toGeometry([]byte(v))
	case map[string]any:
		encoded, err := gojson.Marshal(v)
		if err != nil {
			return nil, err
		}
		return toGeometry(encoded)
	default:
		return nil, fmt.Errorf("unsupported geometry representation %T", value)
	}
}

// GeographyType is the geodetic variant of GEOMETRY. It shares all logic
// with GEOMETRY except its key.
type GeographyType struct {
	GeometryType
}

// NewGeography creates a GEOGRAPHY descriptor
func NewGeography(opts GeometryOptions) *GeographyType {
	return &GeographyType{GeometryType{base: newRawBase("GEOGRAPHY"), opts: opts}}
}

// Pre-built default-configuration descriptors.
var (
	Geometry  = NewGeometry(GeometryOptions{})
	Geography = NewGeography(GeometryOptions{})
)

package datatypes

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/abeai/sequelize/types"
	"github.com/abeai/sequelize/utils"
)

// dateLiteralLayout is the fixed wire format for timestamp literals:
// zero-padded, millisecond precision, signed-offset suffix.
const dateLiteralLayout = "2006-01-02 15:04:05.000 -07:00"

// dateOnlyLayout is the wire format for date-only literals.
const dateOnlyLayout = "2006-01-02"

// DateType is a timestamp column with an optional sub-second precision.
// Precision affects storage on dialects that support it, not the default
// declaration.
type DateType struct {
	base
	precision int
}

// NewDate creates a DATE (timestamp) descriptor. Precision 0 means the
// dialect default.
func NewDate(precision int) *DateType {
	return &DateType{base: newBase("DATE"), precision: precision}
}

// Precision returns the configured sub-second precision, 0 when unset
func (t *DateType) Precision() int {
	return t.precision
}

func (t *DateType) ToSQL(ctx *types.SQLContext) (string, error) {
	if sql, ok, err := dialectSQL(t, ctx); ok || err != nil {
		return sql, err
	}
	return "DATETIME", nil
}

func (t *DateType) Validate(value any) error {
	if _, ok := utils.ToTime(value); ok {
		return nil
	}
	return types.NewValidationError(value, "a valid date")
}

// Stringify renders the instant in the context timezone. An empty
// timezone means UTC; the ambient process zone is never consulted, so
// output is deterministic across deployments.
func (t *DateType) Stringify(value any, ctx *types.StringifyContext) (string, error) {
	tm, ok := utils.ToTime(value)
	if !ok {
		return "", types.NewValidationError(value, "a valid date")
	}
	var timezone string
	if ctx != nil {
		timezone = ctx.Timezone
	}
	loc, err := resolveLocation(timezone)
	if err != nil {
		return "", err
	}
	return tm.In(loc).Format(dateLiteralLayout), nil
}

func (t *DateType) Sanitize(value any, opts *types.SanitizeOptions) any {
	if value == nil || (opts != nil && opts.Raw) {
		return value
	}
	if tm, ok := utils.ToTime(value); ok {
		return tm
	}
	return value
}

// AreValuesEqual treats two values as equal when both are null-like or
// both resolve to the identical instant, regardless of object identity.
func (t *DateType) AreValuesEqual(a, b any) bool {
	emptyA, emptyB := utils.IsEmptyValue(a), utils.IsEmptyValue(b)
	if emptyA || emptyB {
		return emptyA && emptyB
	}
	ta, okA := utils.ToTime(a)
	tb, okB := utils.ToTime(b)
	if okA && okB {
		return ta.Equal(tb)
	}
	return false
}

// DateOnlyType is a calendar-date column with no time of day.
type DateOnlyType struct {
	base
}

// NewDateOnly creates a DATEONLY descriptor
func NewDateOnly() *DateOnlyType {
	return &DateOnlyType{base: newBase("DATEONLY")}
}

func (t *DateOnlyType) ToSQL(ctx *types.SQLContext) (string, error) {
	if sql, ok, err := dialectSQL(t, ctx); ok || err != nil {
		return sql, err
	}
	return "DATE", nil
}

func (t *DateOnlyType) Validate(value any) error {
	if _, ok := utils.ToTime(value); ok {
		return nil
	}
	return types.NewValidationError(value, "a valid date")
}

func (t *DateOnlyType) Stringify(value any, ctx *types.StringifyContext) (string, error) {
	tm, ok := utils.ToTime(value)
	if !ok {
		return "", types.NewValidationError(value, "a valid date")
	}
	return tm.Format(dateOnlyLayout), nil
}

// Sanitize normalizes to YYYY-MM-DD text, dropping any time of day.
// Raw mode returns the driver value unchanged.
func (t *DateOnlyType) Sanitize(value any, opts *types.SanitizeOptions) any {
	if value == nil || (opts != nil && opts.Raw) {
		return value
	}
	if tm, ok := utils.ToTime(value); ok {
		return tm.Format(dateOnlyLayout)
	}
	return value
}

// AreValuesEqual mirrors DATE's empty/same-value rule but compares the
// normalized date text, never instants. Sanitize passes unparsable values
// through unchanged, so the comparison must tolerate non-comparable
// dynamic types like byte slices.
func (t *DateOnlyType) AreValuesEqual(a, b any) bool {
	emptyA, emptyB := utils.IsEmptyValue(a), utils.IsEmptyValue(b)
	if emptyA || emptyB {
		return emptyA && emptyB
	}
	return reflect.DeepEqual(t.Sanitize(a, nil), t.Sanitize(b, nil))
}

// TimeType is a time-of-day column.
type TimeType struct {
	base
}

// NewTime creates a TIME descriptor
func NewTime() *TimeType {
	return &TimeType{base: newBase("TIME")}
}

// NowType marks a column default of "generate the current timestamp at
// default-value time". It is not a storable value type.
type NowType struct {
	base
}

// NewNow creates a NOW marker descriptor
func NewNow() *NowType {
	return &NowType{base: newBase("NOW")}
}

// resolveLocation turns a timezone setting into a *time.Location. Accepts
// an IANA zone name or a fixed UTC offset like "+05:30" or "-0800"; empty
// means UTC.
func resolveLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.UTC, nil
	}
	if offset, ok := parseUTCOffset(timezone); ok {
		return time.FixedZone(timezone, offset), nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, types.NewConfigurationError("invalid timezone %q: %v", timezone, err)
	}
	return loc, nil
}

// parseUTCOffset parses "+05:30", "-08:00" or "+0530" into seconds.
func parseUTCOffset(s string) (int, bool) {
	if len(s) < 3 || (s[0] != '+' && s[0] != '-') {
		return 0, false
	}
	body := strings.Replace(s[1:], ":", "", 1)
	if len(body) != 4 {
		return 0, false
	}
	hours, err := strconv.Atoi(body[:2])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(body[2:])
	if err != nil || minutes > 59 {
		return 0, false
	}
	seconds := hours*3600 + minutes*60
	if s[0] == '-' {
		seconds = -seconds
	}
	return seconds, true
}

// Pre-built default-configuration descriptors.
var (
	Date     = NewDate(0)
	DateOnly = NewDateOnly()
	Time     = NewTime()
	Now      = NewNow()
)

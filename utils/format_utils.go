package utils

import (
	"math"
	"strconv"
	"strings"
)

// IsIntegerValue reports whether a value is integer-formatted:
// integer kinds directly, floats only when they carry no fraction,
// and strings when they parse as base-10 integers.
func IsIntegerValue(v any) bool {
	switch val := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return !math.IsNaN(val) && !math.IsInf(val, 0) && math.Trunc(val) == val
	case float32:
		return IsIntegerValue(float64(val))
	case string:
		_, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		return err == nil
	case []byte:
		return IsIntegerValue(string(val))
	default:
		return false
	}
}

// IsFloatValue reports whether a value is numeric-formatted: any numeric
// kind directly, and strings when they parse as finite decimal numbers.
// The textual tokens "NaN" and "Infinity" are not numeric literals and
// are rejected here; float-typed NaN/Inf values are accepted because the
// float family serializes them through its own literal tokens.
func IsFloatValue(v any) bool {
	switch val := v.(type) {
	case float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	case []byte:
		return IsFloatValue(string(val))
	default:
		return false
	}
}

// IsEmptyValue reports whether a value is null-like for equality purposes:
// nil, an empty string, or a nil byte slice.
func IsEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []byte:
		return val == nil
	default:
		return false
	}
}

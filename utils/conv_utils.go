package utils

import (
	"fmt"
	"strconv"
	"time"
)

// ToString converts various types to string
// Handles different driver and application representations:
// - string: direct return
// - []byte: byte to string conversion
// - numeric types: formatted conversion
// - bool: "true" or "false"
// - nil: ""
func ToString(v any) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// timeLayouts are tried in order when parsing a textual timestamp.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999 -07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ToTime converts various types to time.Time
// Handles different database driver representations:
// - time.Time / *time.Time: direct
// - string / []byte: parsed against common timestamp layouts
// - int/int64: Unix seconds
// Returns false when the value has no time interpretation.
func ToTime(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case *time.Time:
		if val == nil {
			return time.Time{}, false
		}
		return *val, true
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.ParseInLocation(layout, val, time.UTC); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case []byte:
		return ToTime(string(val))
	case int64:
		return time.Unix(val, 0).UTC(), true
	case int:
		return time.Unix(int64(val), 0).UTC(), true
	default:
		return time.Time{}, false
	}
}

// ToBytes converts string-or-binary input to a byte slice
// Returns false for any other type.
func ToBytes(v any) ([]byte, bool) {
	switch val := v.(type) {
	case []byte:
		return val, true
	case string:
		return []byte(val), true
	default:
		return nil, false
	}
}

package utils

import (
	"testing"
	"time"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		// Strings and bytes
		{"string", "hello", "hello"},
		{"byte slice", []byte("hello"), "hello"},
		{"empty string", "", ""},

		// Integer types
		{"int", int(42), "42"},
		{"int32", int32(-7), "-7"},
		{"int64", int64(42), "42"},
		{"uint64", uint64(42), "42"},

		// Float types
		{"float64", float64(3.14), "3.14"},
		{"float64 integral", float64(3), "3"},
		{"float32", float32(2.5), "2.5"},

		// Bool
		{"bool true", true, "true"},
		{"bool false", false, "false"},

		// Nil
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToString(tt.input)
			if result != tt.expected {
				t.Errorf("ToString(%v) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToTime(t *testing.T) {
	ref := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    any
		expected time.Time
		ok       bool
	}{
		{"time.Time", ref, ref, true},
		{"pointer", &ref, ref, true},
		{"nil pointer", (*time.Time)(nil), time.Time{}, false},
		{"RFC3339", "2024-03-15T10:30:00Z", ref, true},
		{"space separated", "2024-03-15 10:30:00", ref, true},
		{"date only", "2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"byte slice", []byte("2024-03-15 10:30:00"), ref, true},
		{"unix seconds", ref.Unix(), ref, true},
		{"garbage", "not a date", time.Time{}, false},
		{"unknown type", struct{}{}, time.Time{}, false},
		{"nil", nil, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ToTime(tt.input)
			if ok != tt.ok {
				t.Fatalf("ToTime(%v) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && !result.Equal(tt.expected) {
				t.Errorf("ToTime(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
		ok       bool
	}{
		{"string", "abc", "abc", true},
		{"byte slice", []byte{0x01, 0x02}, "\x01\x02", true},
		{"int", 42, "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ToBytes(tt.input)
			if ok != tt.ok {
				t.Fatalf("ToBytes(%v) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && string(result) != tt.expected {
				t.Errorf("ToBytes(%v) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// Package values converts loosely typed configuration values, as decoded
// from TOML, into Go types.
package values

import (
	"strconv"
	"time"
)

// String returns v if it is a string, otherwise "".
func String(v any) string {
	s, _ := v.(string)
	return s
}

// Int returns v as an int. TOML integers decode as int64.
func Int(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// Float returns v as a float64.
func Float(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Bool returns v if it is a boolean, otherwise false.
func Bool(v any) bool {
	b, _ := v.(bool)
	return b
}

// Duration parses strings such as "15s"; integers are seconds.
func Duration(v any) time.Duration {
	switch d := v.(type) {
	case string:
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return 0
		}
		return parsed
	case time.Duration:
		return d
	case int64:
		return time.Duration(d) * time.Second
	case int:
		return time.Duration(d) * time.Second
	case float64:
		return time.Duration(d * float64(time.Second))
	default:
		return 0
	}
}

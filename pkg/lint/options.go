package lint

import (
	"github.com/leapstack-labs/layerlint/pkg/core"
)

// Options returns the object payload of a rule setting, or nil.
func Options(rs core.RuleSetting) map[string]any {
	return rs.Option()
}

func lookup(opts map[string]any, key string) (any, bool) {
	if opts == nil {
		return nil, false
	}
	v, ok := opts[key]
	return v, ok
}

// GetOption extracts a typed option with a default value.
func GetOption[T any](opts map[string]any, key string, defaultVal T) T {
	v, ok := lookup(opts, key)
	if !ok {
		return defaultVal
	}
	if typed, ok := v.(T); ok {
		return typed
	}
	return defaultVal
}

// GetIntOption extracts an int option, accepting the numeric kinds YAML and
// JSON decoders produce.
func GetIntOption(opts map[string]any, key string, defaultVal int) int {
	v, ok := lookup(opts, key)
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		if n == float64(int(n)) {
			return int(n)
		}
	}
	return defaultVal
}

// GetStringOption extracts a string option.
func GetStringOption(opts map[string]any, key string, defaultVal string) string {
	return GetOption(opts, key, defaultVal)
}

// GetBoolOption extracts a bool option.
func GetBoolOption(opts map[string]any, key string, defaultVal bool) bool {
	return GetOption(opts, key, defaultVal)
}

// GetStringSliceOption extracts a string slice option. Non-string items make
// the whole option fall back to the default.
func GetStringSliceOption(opts map[string]any, key string, defaultVal []string) []string {
	v, ok := lookup(opts, key)
	if !ok {
		return defaultVal
	}
	if s, ok := toStrings(v); ok {
		return s
	}
	return defaultVal
}

// GetStringMatrixOption extracts a list of string lists, such as import sort
// groups. The second result is false when the key is present but malformed.
func GetStringMatrixOption(opts map[string]any, key string) ([][]string, bool) {
	v, ok := lookup(opts, key)
	if !ok {
		return nil, true
	}
	var rows []any
	switch r := v.(type) {
	case [][]string:
		return r, true
	case []any:
		rows = r
	default:
		return nil, false
	}
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		s, ok := toStrings(row)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func toStrings(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	default:
		return nil, false
	}
}

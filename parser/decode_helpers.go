package parser

import "math"

// putExtra stores an unmodeled key in extra, allocating the map lazily.
func putExtra(extra map[string]any, k string, v any) map[string]any {
	if extra == nil {
		extra = make(map[string]any)
	}
	extra[k] = v
	return extra
}

// asMap returns v as a map[string]any, normalizing the map[any]any that
// YAML produces for mappings with non-string keys.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}

// getString returns v as a string, reporting false for any other type.
func getString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// getStringSlice extracts a []string from the []any that yaml.Unmarshal
// and json.Unmarshal produce.
func getStringSlice(v any) ([]string, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	result := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		result = append(result, s)
	}
	return result, true
}

// getFloat64Ptr extracts a *float64.
// Handles both float64 (from JSON) and int (from YAML) numeric values.
func getFloat64Ptr(v any) (*float64, bool) {
	switch n := v.(type) {
	case float64:
		return &n, true
	case int:
		f := float64(n)
		return &f, true
	case int64:
		f := float64(n)
		return &f, true
	case uint64:
		f := float64(n)
		return &f, true
	}
	return nil, false
}

// getIntPtr extracts a *int.
// Handles both float64 (from JSON) and int (from YAML) numeric values.
func getIntPtr(v any) (*int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return nil, false
		}
		i := int(n)
		return &i, true
	case int:
		return &n, true
	case int64:
		i := int(n)
		return &i, true
	case uint64:
		if n > math.MaxInt {
			return nil, false
		}
		i := int(n)
		return &i, true
	}
	return nil, false
}

// getBool returns v as a bool, reporting false for any other type.
func getBool(v any) (value, ok bool) {
	value, ok = v.(bool)
	return value, ok
}

// getStringMap extracts a map[string]string.
func getStringMap(v any) (map[string]string, bool) {
	m, ok := asMap(v)
	if !ok {
		return nil, false
	}
	result := make(map[string]string, len(m))
	for k, val := range m {
		s, ok := val.(string)
		if !ok {
			return nil, false
		}
		result[k] = s
	}
	return result, true
}

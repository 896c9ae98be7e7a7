// Package params provides the open-ended string-keyed parameter maps that
// flow between stored method configuration, template expansion, and
// call-time overrides. Unrecognized keys are always preserved.
package params

import "sort"

// Map is a parameter bag. Values are scalars, []any, or nested Maps as
// produced by the configuration loader.
type Map map[string]any

// Clone returns a shallow copy. Stored configuration is cloned before any
// resolution step so a resolution never mutates the document.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge overlays other onto a copy of m; keys in other win.
func (m Map) Merge(other Map) Map {
	out := m.Clone()
	if out == nil {
		out = make(Map, len(other))
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// SortedKeys returns the keys in lexical order, for deterministic rendering.
func (m Map) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetString returns the value for key when it is a string.
func (m Map) GetString(key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// StringOr returns the string value for key, or fallback when absent or
// not a string.
func (m Map) StringOr(key, fallback string) string {
	if s, ok := m.GetString(key); ok {
		return s
	}
	return fallback
}

// BoolOr returns the bool value for key, or fallback.
func (m Map) BoolOr(key string, fallback bool) bool {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

// Package template performs {{ name }} placeholder substitution over
// configuration values.
//
// Expansion is deliberately minimal: no conditionals, no loops, no escaping,
// and a single pass — substituted values are never re-scanned for further
// placeholders. It recurses over the closed set of configuration value
// shapes (string scalar, string-keyed map, sequence); any other scalar is
// returned unchanged.
package template

import (
	"regexp"
	"sort"
)

// placeholderRe matches one {{ name }} occurrence; whitespace inside the
// braces is ignored.
var placeholderRe = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// Expand substitutes placeholders throughout value. Map keys are left
// untouched; only values are expanded. It fails with *UnresolvedVarError
// on the first placeholder whose name is absent from vars.
func Expand(value any, vars map[string]string) (any, error) {
	switch v := value.(type) {
	case string:
		return expandString(v, vars)
	case map[string]any:
		// Keys sorted so the reported unresolved placeholder is stable.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]any, len(v))
		for _, k := range keys {
			expanded, err := Expand(v[k], vars)
			if err != nil {
				return nil, err
			}
			out[k] = expanded
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			expanded, err := Expand(elem, vars)
			if err != nil {
				return nil, err
			}
			out[i] = expanded
		}
		return out, nil
	case []string:
		out := make([]string, len(v))
		for i, elem := range v {
			expanded, err := expandString(elem, vars)
			if err != nil {
				return nil, err
			}
			out[i] = expanded
		}
		return out, nil
	default:
		return value, nil
	}
}

// ExpandMap is Expand specialized to a string-keyed map, preserving the
// map type for callers that hold configuration mappings.
func ExpandMap(m map[string]any, vars map[string]string) (map[string]any, error) {
	expanded, err := Expand(m, vars)
	if err != nil {
		return nil, err
	}
	return expanded.(map[string]any), nil
}

func expandString(s string, vars map[string]string) (string, error) {
	var unresolved *UnresolvedVarError
	out := placeholderRe.ReplaceAllStringFunc(s, func(match string) string {
		if unresolved != nil {
			return match
		}
		name := placeholderRe.FindStringSubmatch(match)[1]
		val, ok := vars[name]
		if !ok {
			unresolved = newUnresolvedVarError(name, vars)
			return match
		}
		return val
	})
	if unresolved != nil {
		return "", unresolved
	}
	return out, nil
}

package content

import (
	"fmt"
	"math"
	"strings"

	"github.com/karlseguin/typed"
)

// Frontmatter is the open key/value bag parsed from a post's metadata block.
// Unknown keys are kept as-is; every read goes through a type guard.
type Frontmatter map[string]any

// ToFrontmatter collapses anything that is not a mapping to an empty bag.
func ToFrontmatter(v any) Frontmatter {
	switch m := v.(type) {
	case Frontmatter:
		if m == nil {
			return Frontmatter{}
		}
		return m
	case map[string]any:
		if m == nil {
			return Frontmatter{}
		}
		return Frontmatter(m)
	case map[any]any:
		out := make(Frontmatter, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out
	default:
		return Frontmatter{}
	}
}

func (f Frontmatter) typed() typed.Typed {
	return typed.New(map[string]interface{}(f))
}

// String returns the value under key when it is a non-empty string.
func (f Frontmatter) String(key string) (string, bool) {
	s, ok := f.typed().StringIf(key)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Bool reports whether key holds the boolean true.
func (f Frontmatter) Bool(key string) bool {
	b, ok := f.typed().BoolIf(key)
	return ok && b
}

// Strings returns the value under key when it is a list made only of strings.
func (f Frontmatter) Strings(key string) ([]string, bool) {
	v, ok := f[key]
	if !ok {
		return nil, false
	}
	return ToStringSlice(v)
}

// Object returns the value under key when it is a mapping.
func (f Frontmatter) Object(key string) (map[string]any, bool) {
	return AsObject(f[key])
}

// AsObject accepts the mapping shapes a YAML decoder produces.
func AsObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case Frontmatter:
		return m, m != nil
	case map[any]any:
		return ToFrontmatter(m), true
	}
	return nil, false
}

// Resolve walks keys in priority order and returns the first value that is
// neither nil nor the empty string. fallback is returned when none match.
func Resolve(keys []string, fm Frontmatter, fallback any) any {
	for _, k := range keys {
		v, ok := fm[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			continue
		}
		return v
	}
	return fallback
}

// ResolveString is Resolve restricted to string values. A present value of
// another type does not satisfy its key.
func ResolveString(keys []string, fm Frontmatter, fallback string) string {
	for _, k := range keys {
		if s, ok := fm.String(k); ok {
			return s
		}
	}
	return fallback
}

// ResolveNumber is Resolve restricted to finite numeric values.
func ResolveNumber(keys []string, fm Frontmatter) (float64, bool) {
	for _, k := range keys {
		if n, ok := AsNumber(fm[k]); ok {
			return n, true
		}
	}
	return 0, false
}

func IsNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}

func IsStringArray(v any) bool {
	_, ok := ToStringSlice(v)
	return ok
}

func IsFiniteNumber(v any) bool {
	_, ok := AsNumber(v)
	return ok
}

// AsNumber converts any Go numeric kind to float64, rejecting NaN and ±Inf.
func AsNumber(v any) (float64, bool) {
	var n float64
	switch x := v.(type) {
	case int:
		n = float64(x)
	case int8:
		n = float64(x)
	case int16:
		n = float64(x)
	case int32:
		n = float64(x)
	case int64:
		n = float64(x)
	case uint:
		n = float64(x)
	case uint8:
		n = float64(x)
	case uint16:
		n = float64(x)
	case uint32:
		n = float64(x)
	case uint64:
		n = float64(x)
	case float32:
		n = float64(x)
	case float64:
		n = x
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ToStringSlice accepts []string or a []any whose every element is a string.
func ToStringSlice(v any) ([]string, bool) {
	switch x := v.(type) {
	case []string:
		return append([]string(nil), x...), true
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// SplitList trims and drops empty entries of a comma separated list.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

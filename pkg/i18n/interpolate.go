package i18n

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

var placeholderRegex = regexp.MustCompile(`\{(\w+)\}`)

// Interpolate substitutes "{name}" tokens in tmpl with values from params.
// Tokens without a matching entry are left literal.
func Interpolate(tmpl string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}

	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[1 : len(match)-1]
		if val, ok := params[name]; ok {
			return stringify(val)
		}
		return match
	})
}

// stringify renders slices as comma separated lists ("a, b, c") and
// everything else with fmt.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = stringify(rv.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	}

	return fmt.Sprint(v)
}

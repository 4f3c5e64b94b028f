package rules

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
)

// Options carries rule parameters recorded on a chain step.
type Options map[string]any

// Merge combines several option records; later keys win. Nil records are skipped.
func Merge(opts ...Options) Options {
	var out Options
	for _, o := range opts {
		if len(o) == 0 {
			continue
		}
		if out == nil {
			out = make(Options, len(o))
		}
		maps.Copy(out, o)
	}
	return out
}

// Clone returns a copy of o. Slice and map values are copied recursively,
// so later changes to the caller's collections do not reach the clone.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case Options:
		return val.Clone()
	case map[string]any:
		return map[string]any(Options(val).Clone())
	case []any:
		if val == nil {
			return val
		}
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return slices.Clone(val)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return out.Interface()
	default:
		return v
	}
}

// Has reports whether key is set.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Int returns an integral option. Floats are accepted when they hold an integer.
func (o Options) Int(key string) (int, bool) {
	f, ok := Float64(o[key])
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// IntOr returns the option or def when unset.
func (o Options) IntOr(key string, def int) int {
	if v, ok := o.Int(key); ok {
		return v
	}
	return def
}

// Float returns a numeric option as float64.
func (o Options) Float(key string) (float64, bool) {
	return Float64(o[key])
}

// String returns a string option. Stringers and numbers are formatted.
func (o Options) String(key string) (string, bool) {
	switch v := o[key].(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		if _, ok := Float64(v); ok {
			return fmt.Sprint(v), true
		}
		return "", false
	}
}

// StringOr returns the option or def when unset.
func (o Options) StringOr(key, def string) string {
	if v, ok := o.String(key); ok {
		return v
	}
	return def
}

// BoolOr returns a boolean option or def when unset or not a bool.
func (o Options) BoolOr(key string, def bool) bool {
	if v, ok := o[key].(bool); ok {
		return v
	}
	return def
}

// Bool returns a boolean option, false when unset.
func (o Options) Bool(key string) bool {
	return o.BoolOr(key, false)
}

// Values returns a list option as []any. Any slice or array kind is accepted.
func (o Options) Values(key string) ([]any, bool) {
	return Slice(o[key])
}

// Strings returns a list option whose items are strings.
func (o Options) Strings(key string) []string {
	items, ok := o.Values(key)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Float64 converts any Go numeric kind or json.Number to float64.
func Float64(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// IsNumber reports whether v is a finite number.
func IsNumber(v any) bool {
	f, ok := Float64(v)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Slice copies any slice or array kind into []any. Strings and byte
// slices are not treated as sequences.
func Slice(v any) ([]any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case []any:
		return s, s != nil
	case []byte, string:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Map copies any map with string keys into map[string]any.
// Nil maps are rejected.
func Map(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return m, m != nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

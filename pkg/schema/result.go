package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ObjectKey is the reserved JSON key holding object-level issues.
// It cannot be used as a field name.
const ObjectKey = "_object"

// Result is the outcome of one Validate call.
// Errors is nil exactly when Valid is true. Value holds the transformed
// input, also when validation failed.
type Result struct {
	Valid  bool
	Errors *ErrorTree
	Value  any
}

// IssueKind classifies a failure.
type IssueKind int

const (
	// RuleViolation is a failed validator verdict.
	RuleViolation IssueKind = iota
	// TypeMismatch is input of the wrong shape. It is always the only issue.
	TypeMismatch
	// FieldMissing is a declared object field absent from the input.
	FieldMissing
)

func (k IssueKind) String() string {
	switch k {
	case TypeMismatch:
		return "type_mismatch"
	case FieldMissing:
		return "field_missing"
	default:
		return "rule_violation"
	}
}

// MarshalText encodes the kind by name.
func (k IssueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Issue is one formatted failure.
type Issue struct {
	Kind    IssueKind      `json:"kind"`
	Rule    string         `json:"rule"`
	Message string         `json:"message"`
	Context map[string]any `json:"context"`
}

// FieldErrors holds the errors of one object field.
type FieldErrors struct {
	Name   string
	Errors *ErrorTree
}

// PathIssue is an issue with the dotted path of the value it belongs to,
// like "user.emails[2]". Issues of the root value have an empty path.
type PathIssue struct {
	Path string
	Issue
}

// ErrorTree mirrors the shape of the validated value.
//
// Issues holds scalar failures, array-level failures or object-level
// (cross-field) failures. Items is the array side channel: one entry per
// element index, nil for valid elements, with trailing nils trimmed. Fields
// holds object field errors in shape declaration order.
type ErrorTree struct {
	Issues []Issue
	Items  []*ErrorTree
	Fields []FieldErrors

	object bool
}

// IsEmpty reports whether the tree holds no failure at any depth.
func (t *ErrorTree) IsEmpty() bool {
	if t == nil {
		return true
	}
	if len(t.Issues) > 0 {
		return false
	}
	for _, item := range t.Items {
		if !item.IsEmpty() {
			return false
		}
	}
	for _, f := range t.Fields {
		if !f.Errors.IsEmpty() {
			return false
		}
	}
	return true
}

// Item returns the errors of the element at index i, or nil.
func (t *ErrorTree) Item(i int) *ErrorTree {
	if t == nil || i < 0 || i >= len(t.Items) {
		return nil
	}
	return t.Items[i]
}

// Field returns the errors of the named field, or nil.
func (t *ErrorTree) Field(name string) *ErrorTree {
	if t == nil {
		return nil
	}
	for _, f := range t.Fields {
		if f.Name == name {
			return f.Errors
		}
	}
	return nil
}

// Has reports whether the named field has errors.
func (t *ErrorTree) Has(name string) bool {
	return t.Field(name) != nil
}

// FieldNames returns the names of failing fields in shape order.
func (t *ErrorTree) FieldNames() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Flatten lists every issue with its path, depth first in tree order.
func (t *ErrorTree) Flatten() []PathIssue {
	var out []PathIssue
	t.flatten("", &out)
	return out
}

func (t *ErrorTree) flatten(path string, out *[]PathIssue) {
	if t == nil {
		return
	}
	for _, issue := range t.Issues {
		*out = append(*out, PathIssue{Path: path, Issue: issue})
	}
	for i, item := range t.Items {
		item.flatten(path+"["+strconv.Itoa(i)+"]", out)
	}
	for _, f := range t.Fields {
		name := f.Name
		if path != "" {
			name = path + "." + name
		}
		f.Errors.flatten(name, out)
	}
}

// Error joins every issue as "path: message".
func (t *ErrorTree) Error() string {
	issues := t.Flatten()
	parts := make([]string, 0, len(issues))
	for _, pi := range issues {
		if pi.Path == "" {
			parts = append(parts, pi.Message)
			continue
		}
		parts = append(parts, pi.Path+": "+pi.Message)
	}
	return strings.Join(parts, "; ")
}

// MarshalJSON encodes scalar trees as an issue array, arrays with failing
// items as {"errors": [...], "items": [...]} and objects as a map of field
// names to subtrees with object-level issues under ObjectKey.
func (t *ErrorTree) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}
	if t.object || len(t.Fields) > 0 {
		return t.marshalObject()
	}

	issues := t.Issues
	if issues == nil {
		issues = []Issue{}
	}
	if len(t.Items) == 0 {
		return json.Marshal(issues)
	}
	return json.Marshal(struct {
		Errors []Issue       `json:"errors"`
		Items  []*ErrorTree `json:"items"`
	}{issues, t.Items})
}

func (t *ErrorTree) marshalObject() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	write := func(key string, v any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(b)
		return nil
	}

	for _, f := range t.Fields {
		if err := write(f.Name, f.Errors); err != nil {
			return nil, err
		}
	}
	if len(t.Issues) > 0 {
		if err := write(ObjectKey, t.Issues); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

package schema_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forma/pkg/rules"
	"github.com/dmitrymomot/forma/pkg/schema"
)

func TestObjectSchema_TypeGuard(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewObject(rt, schema.Field{Name: "a", Schema: schema.NewString(rt)})

	var nilMap map[string]any
	for _, input := range []any{nil, nilMap, "x", 1, []any{}, map[int]any{1: "a"}} {
		res, err := s.Validate(t.Context(), input)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		require.Len(t, res.Errors.Issues, 1)
		assert.Empty(t, res.Errors.Fields)
		assert.Equal(t, schema.TypeMismatch, res.Errors.Issues[0].Kind)
		assert.Equal(t, "Invalid type, expected object", res.Errors.Issues[0].Message)
		assert.Equal(t, input, res.Value)
	}
}

func TestObjectSchema_MissingField(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewObject(rt, schema.Field{Name: "a", Schema: schema.NewString(rt).ValidateNotEmpty()})

	res, err := s.Validate(t.Context(), map[string]any{})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"a"}, res.Errors.FieldNames())
	assert.Empty(t, res.Errors.Issues)

	issue := res.Errors.Field("a").Issues[0]
	assert.Equal(t, schema.FieldMissing, issue.Kind)
	assert.Equal(t, schema.RuleRequired, issue.Rule)
	assert.Equal(t, "This field is required", issue.Message)
	assert.Equal(t, map[string]any{}, res.Value, "no default is injected")
}

func TestObjectSchema_Extras(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewObject(rt, schema.Field{Name: "name", Schema: schema.NewString(rt)})

	res, err := s.Validate(t.Context(), map[string]any{"name": "x", "extra": 1})
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Nil(t, res.Errors)
	assert.Equal(t, map[string]any{"name": "x", "extra": 1}, res.Value)
}

func TestObjectSchema_Nested(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewObject(rt, schema.Field{
		Name: "user",
		Schema: schema.NewObject(rt, schema.Field{
			Name:   "name",
			Schema: schema.NewString(rt).ValidateNotEmpty(),
		}),
	})

	res, err := s.Validate(t.Context(), map[string]any{"user": map[string]any{"name": ""}})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.True(t, res.Errors.Has("user"))
	user := res.Errors.Field("user")
	assert.False(t, user.IsEmpty())
	assert.Equal(t, []string{"validateNotEmpty"}, rulesOf(user.Field("name")))

	assert.Equal(t, []schema.PathIssue{{Path: "user.name", Issue: user.Field("name").Issues[0]}}, res.Errors.Flatten())
	assert.Equal(t, "user.name: Value cannot be empty", res.Errors.Error())
}

func TestObjectSchema_AllValidHasNilErrors(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewObject(rt,
		schema.Field{Name: "a", Schema: schema.NewString(rt).ValidateNotEmpty()},
		schema.Field{Name: "b", Schema: schema.NewNumber(rt).Min(0)},
	)

	res, err := s.Validate(t.Context(), map[string]any{"a": "x", "b": 1})
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Nil(t, res.Errors)
}

func TestObjectSchema_InputNotMutated(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewObject(rt, schema.Field{Name: "name", Schema: schema.NewString(rt).Trim()})

	input := map[string]any{"name": "  x  "}
	res, err := s.Validate(t.Context(), input)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "x"}, res.Value)
	assert.Equal(t, "  x  ", input["name"])
}

func TestObjectSchema_TypedMaps(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewObject(rt, schema.Field{Name: "name", Schema: schema.NewString(rt).Trim()})

	res, err := s.Validate(t.Context(), map[string]string{"name": " x ", "other": "y"})
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, map[string]any{"name": "x", "other": "y"}, res.Value)
}

func TestObjectSchema_CrossFieldRules(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewObject(rt,
		schema.Field{Name: "password", Schema: schema.NewString(rt).Trim()},
		schema.Field{Name: "confirm", Schema: schema.NewString(rt).Trim()},
	).FieldsMatch("password", "confirm")

	res, err := s.Validate(t.Context(), map[string]any{"password": " secret ", "confirm": "secret"})
	require.NoError(t, err)
	assert.True(t, res.Valid, "cross-field rules see processed fields")

	res, err = s.Validate(t.Context(), map[string]any{"password": "a", "confirm": "b"})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Empty(t, res.Errors.Fields)
	require.Len(t, res.Errors.Issues, 1)
	assert.Equal(t, "Fields password and confirm must match", res.Errors.Issues[0].Message)

	t.Run("require one of", func(t *testing.T) {
		contact := schema.NewObject(rt).RequireOneOf("email", "phone")

		res, err := contact.Validate(t.Context(), map[string]any{"phone": "11999999999"})
		require.NoError(t, err)
		assert.True(t, res.Valid)

		res, err = contact.Validate(t.Context(), map[string]any{})
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "At least one of [email, phone] is required", res.Errors.Issues[0].Message)
	})
}

func TestObjectSchema_ObjectIssuesJSON(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewObject(rt,
		schema.Field{Name: "name", Schema: schema.NewString(rt).ValidateNotEmpty()},
		schema.Field{Name: "tags", Schema: schema.NewArray(rt, schema.NewString(rt).ValidateSlug())},
	).RequireOneOf("email")

	res, err := s.Validate(t.Context(), map[string]any{"name": "", "tags": []any{"ok", "Not Ok"}})
	require.NoError(t, err)

	data, err := json.Marshal(res.Errors)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": [{"kind": "rule_violation", "rule": "validateNotEmpty", "message": "Value cannot be empty", "context": null}],
		"tags": {"errors": [], "items": [null, [{"kind": "rule_violation", "rule": "validateSlug", "message": "Value must be a valid slug", "context": null}]]},
		"_object": [{"kind": "rule_violation", "rule": "validateRequireOneOf", "message": "At least one of [email] is required", "context": {"fields": ["email"]}}]
	}`, string(data))
}

func TestObjectSchema_ShapeAndExtend(t *testing.T) {
	rt := newRuntime(t)
	base := schema.NewObject(rt, schema.Field{Name: "a", Schema: schema.NewString(rt)}).
		Custom("never", func(context.Context, *rules.Engine, any, rules.Options) (rules.Verdict, error) {
			return rules.Fail("never", nil), nil
		})

	extended := base.Extend(
		schema.Field{Name: "b", Schema: schema.NewNumber(rt)},
		schema.Field{Name: "a", Schema: schema.NewNumber(rt)},
	)
	reshaped := base.Shape(schema.Field{Name: "z", Schema: schema.NewString(rt)})

	names := func(fields []schema.Field) []string {
		out := make([]string, 0, len(fields))
		for _, f := range fields {
			out = append(out, f.Name)
		}
		return out
	}
	assert.Equal(t, []string{"a"}, names(base.Fields()))
	assert.Equal(t, []string{"a", "b"}, names(extended.Fields()))
	assert.Equal(t, []string{"z"}, names(reshaped.Fields()))
	assert.Equal(t, base.Chain().Len(), reshaped.Chain().Len())

	res, err := extended.Validate(t.Context(), map[string]any{"a": "text", "b": 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, res.Errors.FieldNames(), "a is now a number field")
	assert.Equal(t, []string{"never"}, rulesOf(res.Errors))
}

func TestObjectSchema_ReservedFieldName(t *testing.T) {
	rt := newRuntime(t)
	assert.Panics(t, func() {
		schema.NewObject(rt, schema.Field{Name: schema.ObjectKey, Schema: schema.NewString(rt)})
	})
	assert.Panics(t, func() {
		schema.NewObject(rt).Extend(schema.Field{Name: "x"})
	})
}

func TestObjectSchema_ShapeChange(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewObject(rt).Transform("values", func(_ context.Context, _ *rules.Engine, v any, _ rules.Options) (any, error) {
		out := []any{}
		for _, item := range v.(map[string]any) {
			out = append(out, item)
		}
		return out, nil
	})

	_, err := s.Validate(t.Context(), map[string]any{"a": 1})
	require.ErrorIs(t, err, schema.ErrShapeChanged)
}

func TestObjectSchema_ConcurrentFields(t *testing.T) {
	fields := func(rt *schema.Runtime) []schema.Field {
		out := make([]schema.Field, 0, 20)
		for i := range 20 {
			name := string(rune('a' + i))
			out = append(out, schema.Field{Name: name, Schema: schema.NewString(rt).Trim().ValidateLength(rules.Options{"min": 2})})
		}
		return out
	}
	input := map[string]any{}
	for i := range 20 {
		if i%4 == 0 {
			continue
		}
		v := " xx "
		if i%2 == 0 {
			v = "x"
		}
		input[string(rune('a'+i))] = v
	}

	seqRT := newRuntime(t)
	parRT := newRuntime(t, schema.WithConcurrency(4))

	seq, err := schema.NewObject(seqRT, fields(seqRT)...).Validate(t.Context(), input)
	require.NoError(t, err)
	par, err := schema.NewObject(parRT, fields(parRT)...).Validate(t.Context(), input)
	require.NoError(t, err)

	assert.Equal(t, seq.Value, par.Value)
	assert.Equal(t, seq.Errors.FieldNames(), par.Errors.FieldNames())
	assert.Equal(t, seq.Errors.Flatten(), par.Errors.Flatten())
}

package schema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forma/pkg/rules"
	"github.com/dmitrymomot/forma/pkg/schema"
)

func TestArraySchema_TypeGuard(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewArray(rt, schema.NewString(rt).Trim()).MinLength(1)

	for _, input := range []any{"abc", 42, nil, map[string]any{"a": 1}, []any(nil)} {
		res, err := s.Validate(t.Context(), input)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		require.Len(t, res.Errors.Issues, 1)
		assert.Nil(t, res.Errors.Items)

		issue := res.Errors.Issues[0]
		assert.Equal(t, schema.TypeMismatch, issue.Kind)
		assert.Equal(t, schema.RuleInvalidType, issue.Rule)
		assert.Equal(t, "Invalid type, expected array", issue.Message)
		assert.Equal(t, input, res.Value)
	}
}

func TestArraySchema_SparseItems(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewArray(rt, schema.NewNumber(rt).Min(0))

	res, err := s.Validate(t.Context(), []any{1, 2, -1, 4})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.NotNil(t, res.Errors)
	assert.Empty(t, res.Errors.Issues)
	require.Len(t, res.Errors.Items, 3)
	assert.Nil(t, res.Errors.Item(0))
	assert.Nil(t, res.Errors.Item(1))
	assert.Equal(t, []string{"validateMin"}, rulesOf(res.Errors.Item(2)))
	assert.Nil(t, res.Errors.Item(3))
}

func TestArraySchema_ArrayAndItemErrors(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewArray(rt, schema.NewString(rt).ValidateEmail()).MinLength(3)

	res, err := s.Validate(t.Context(), []any{"bad", "a@b.com"})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"validateLength"}, rulesOf(res.Errors))
	require.Len(t, res.Errors.Items, 1)
	assert.Equal(t, []string{"validateEmail"}, rulesOf(res.Errors.Item(0)))

	res, err = s.Validate(t.Context(), []any{"a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"validateLength"}, rulesOf(res.Errors))
	assert.Nil(t, res.Errors.Items)
}

func TestArraySchema_TransformsItems(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewArray(rt, schema.NewString(rt).Trim().NormalizeEmail().ValidateEmail()).MinLength(2)

	input := []string{"  TESTE@EMAIL.COM ", "  outro@dominio.com  "}
	res, err := s.Validate(t.Context(), input)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Nil(t, res.Errors)
	assert.Equal(t, []any{"teste@email.com", "outro@dominio.com"}, res.Value)
	assert.Equal(t, "  TESTE@EMAIL.COM ", input[0], "input is not modified")
}

func TestArraySchema_InputNotMutated(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewArray(rt, schema.NewString(rt).ToUpperCase())

	input := []any{"a", "b"}
	res, err := s.Validate(t.Context(), input)
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "B"}, res.Value)
	assert.Equal(t, []any{"a", "b"}, input)
}

func TestArraySchema_WithoutItemSchema(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewArray(rt, nil).ValidateNotEmpty().ValidateUnique()

	res, err := s.Validate(t.Context(), []any{1, "x", 1})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"validateUnique"}, rulesOf(res.Errors))
	assert.Equal(t, map[string]any{"index": 2}, res.Errors.Issues[0].Context)

	res, err = s.Validate(t.Context(), []any{})
	require.NoError(t, err)
	assert.Equal(t, []string{"validateNotEmpty"}, rulesOf(res.Errors))

	withItems := s.Items(schema.NewNumber(rt))
	assert.Nil(t, s.Item())
	assert.NotNil(t, withItems.Item())
}

func TestArraySchema_ArrayLevelTransform(t *testing.T) {
	rt := newRuntime(t)
	dedupe := func(_ context.Context, _ *rules.Engine, v any, _ rules.Options) (any, error) {
		seen := map[any]bool{}
		var out []any
		for _, item := range v.([]any) {
			if !seen[item] {
				seen[item] = true
				out = append(out, item)
			}
		}
		return out, nil
	}

	s := schema.NewArray(rt, nil).Transform("dedupe", dedupe).ValidateUnique()
	res, err := s.Validate(t.Context(), []any{"a", "b", "a"})
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, []any{"a", "b"}, res.Value)

	t.Run("shape change is a fault", func(t *testing.T) {
		broken := schema.NewArray(rt, nil).Transform("join", func(context.Context, *rules.Engine, any, rules.Options) (any, error) {
			return "a,b", nil
		})
		_, err := broken.Validate(t.Context(), []any{"a", "b"})
		require.ErrorIs(t, err, schema.ErrShapeChanged)
	})
}

func TestArraySchema_ItemFault(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewArray(rt, schema.NewString(rt).Validator("validateMissing"))

	_, err := s.Validate(t.Context(), []any{"a"})
	require.ErrorIs(t, err, rules.ErrUnknownRule)
	assert.Contains(t, err.Error(), "item 0")
}

func TestArraySchema_ConcurrentMatchesSequential(t *testing.T) {
	item := func(rt *schema.Runtime) schema.Schema {
		return schema.NewObject(rt,
			schema.Field{Name: "email", Schema: schema.NewString(rt).Trim().ValidateEmail()},
			schema.Field{Name: "age", Schema: schema.NewNumber(rt).Min(18)},
		)
	}

	input := make([]any, 0, 40)
	for i := range 40 {
		row := map[string]any{"email": " user@example.com ", "age": 20}
		if i%3 == 0 {
			row["email"] = "broken"
		}
		if i%7 == 0 {
			delete(row, "age")
		}
		input = append(input, row)
	}

	seqRT := newRuntime(t)
	parRT := newRuntime(t, schema.WithConcurrency(8))
	assert.Equal(t, 8, parRT.Concurrency())

	seq, err := schema.NewArray(seqRT, item(seqRT)).Validate(t.Context(), input)
	require.NoError(t, err)
	par, err := schema.NewArray(parRT, item(parRT)).Validate(t.Context(), input)
	require.NoError(t, err)

	assert.Equal(t, seq.Valid, par.Valid)
	assert.Equal(t, seq.Value, par.Value)
	assert.Equal(t, seq.Errors.Flatten(), par.Errors.Flatten())
	assert.Len(t, par.Errors.Items, 40)
}

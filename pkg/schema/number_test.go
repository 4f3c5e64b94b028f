package schema_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forma/pkg/rules"
	"github.com/dmitrymomot/forma/pkg/schema"
)

func TestNumberSchema_TypeGuard(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewNumber(rt).Min(100)

	for _, input := range []any{"42", nil, true, math.NaN(), math.Inf(1), []any{1}} {
		res, err := s.Validate(t.Context(), input)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		require.Len(t, res.Errors.Issues, 1)

		issue := res.Errors.Issues[0]
		assert.Equal(t, schema.TypeMismatch, issue.Kind)
		assert.Equal(t, schema.RuleNumeric, issue.Rule)
		assert.Equal(t, "Value must be numeric", issue.Message)

		if f, ok := input.(float64); ok && math.IsNaN(f) {
			assert.True(t, math.IsNaN(res.Value.(float64)))
			continue
		}
		assert.Equal(t, input, res.Value)
	}
}

func TestNumberSchema_AcceptsNumericKinds(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewNumber(rt).ValidateInt().Min(1)

	for _, input := range []any{1, int8(2), uint16(3), int64(4), float32(5), 6.0, json.Number("7")} {
		res, err := s.Validate(t.Context(), input)
		require.NoError(t, err)
		assert.True(t, res.Valid, "%T", input)
		assert.Equal(t, input, res.Value)
	}
}

func TestNumberSchema_Rules(t *testing.T) {
	rt := newRuntime(t)
	n := schema.NewNumber(rt)

	tests := []struct {
		name   string
		schema schema.NumberSchema
		value  any
		valid  bool
		rule   string
	}{
		{"int", n.ValidateInt(), 22, true, ""},
		{"int fraction", n.ValidateInt(), 22.5, false, "validateInt"},
		{"float", n.ValidateFloat(), 1.5, true, ""},
		{"float integral", n.ValidateFloat(), 2, false, "validateFloat"},
		{"positive", n.ValidatePositive(), 1, true, ""},
		{"positive zero", n.ValidatePositive(), 0, false, "validatePositive"},
		{"negative", n.ValidateNegative(), -1, true, ""},
		{"divisible", n.ValidateDivisibleBy(rules.Options{"divisor": 3}), 9, true, ""},
		{"not divisible", n.ValidateDivisibleBy(rules.Options{"divisor": 3}), 10, false, "validateDivisibleBy"},
		{"decimal", n.ValidateDecimal(), 0.5, true, ""},
		{"numeric", n.ValidateNumeric(), 3, true, ""},
		{"not empty", n.ValidateNotEmpty(), 0, true, ""},
		{"is in", n.ValidateIsIn(rules.Options{"values": []any{1, 2}}), 2, true, ""},
		{"not in", n.ValidateIsIn(rules.Options{"values": []any{1, 2}}), 3, false, "validateIsIn"},
		{"whitelisted", n.ValidateIsWhitelisted(rules.Options{"values": []int{5}}), 5, true, ""},
		{"blacklisted", n.ValidateIsBlacklisted(rules.Options{"values": []int{5}}), 5, false, "validateIsBlacklisted"},
		{"min", n.Min(18), 18, true, ""},
		{"below min", n.Min(18), 17, false, "validateMin"},
		{"max", n.Max(10), 10.5, false, "validateMax"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.schema.Validate(t.Context(), tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, res.Valid)
			if tt.valid {
				assert.Nil(t, res.Errors)
				return
			}
			assert.Equal(t, []string{tt.rule}, rulesOf(res.Errors))
		})
	}
}

func TestNumberSchema_Messages(t *testing.T) {
	rt := newRuntime(t)

	res, err := schema.NewNumber(rt).Min(18).Max(10).Validate(t.Context(), 15)
	require.NoError(t, err)
	require.Len(t, res.Errors.Issues, 2)
	assert.Equal(t, "Value must be at least 18", res.Errors.Issues[0].Message)
	assert.Equal(t, "Value must be at most 10", res.Errors.Issues[1].Message)

	res, err = schema.NewNumber(rt).ValidateIsIn(rules.Options{"values": []int{1, 2, 3}}).Validate(t.Context(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Value must be one of [1, 2, 3]", res.Errors.Issues[0].Message)
}

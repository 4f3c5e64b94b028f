package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/forma/pkg/rules"
	"github.com/dmitrymomot/forma/pkg/schema"
)

func TestChain_Append(t *testing.T) {
	var empty schema.Chain
	one := empty.Append(schema.Step{Kind: schema.KindSanitizer, Rule: "trim"})
	twoA := one.Append(schema.Step{Kind: schema.KindValidator, Rule: "validateEmail"})
	twoB := one.Append(schema.Step{Kind: schema.KindValidator, Rule: "validateURL"})

	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, "validateEmail", twoA.Steps()[1].Rule)
	assert.Equal(t, "validateURL", twoB.Steps()[1].Rule)
}

func TestChain_OptionsAreCopied(t *testing.T) {
	opts := rules.Options{"min": 3}
	chain := schema.NewChain(schema.Step{Kind: schema.KindValidator, Rule: "validateLength", Options: opts})
	opts["min"] = 10

	assert.Equal(t, 3, chain.Steps()[0].Options["min"])
}

func TestChain_ListOptionsAreCopied(t *testing.T) {
	rt := newRuntime(t)
	values := []any{1.0, 2.0}
	s := schema.NewNumber(rt).ValidateIsIn(rules.Options{"values": values})
	values[0] = 99.0

	res, err := s.Validate(t.Context(), 1.0)
	assert.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestChain_StepsIsACopy(t *testing.T) {
	chain := schema.NewChain(schema.Step{Rule: "trim"})
	steps := chain.Steps()
	steps[0].Rule = "changed"
	assert.Equal(t, "trim", chain.Steps()[0].Rule)
}

func TestChain_Phases(t *testing.T) {
	chain := schema.NewChain(
		schema.Step{Kind: schema.KindValidator, Rule: "v1"},
		schema.Step{Kind: schema.KindSanitizer, Rule: "s1"},
		schema.Step{Kind: schema.KindFormatter, Rule: "f1"},
		schema.Step{Kind: schema.KindValidator, Rule: "v2"},
	)

	var transforms, validators []string
	for s := range chain.Transforms() {
		transforms = append(transforms, s.Rule)
	}
	for s := range chain.Validators() {
		validators = append(validators, s.Rule)
	}
	assert.Equal(t, []string{"s1", "f1"}, transforms)
	assert.Equal(t, []string{"v1", "v2"}, validators)
}

func TestStepKind_String(t *testing.T) {
	assert.Equal(t, "sanitizer", schema.KindSanitizer.String())
	assert.Equal(t, "formatter", schema.KindFormatter.String())
	assert.Equal(t, "validator", schema.KindValidator.String())
	assert.True(t, schema.KindFormatter.Transforms())
	assert.False(t, schema.KindValidator.Transforms())
}

func TestSchema_ImmutableChains(t *testing.T) {
	rt := newRuntime(t)
	ctx := t.Context()

	base := schema.NewString(rt).Trim()
	short := base.ValidateLength(rules.Options{"min": 5})
	long := base.ValidateLength(rules.Options{"min": 10})

	assert.Equal(t, 1, base.Chain().Len())
	assert.Equal(t, 2, short.Chain().Len())
	assert.Equal(t, 2, long.Chain().Len())

	res, err := short.Validate(ctx, "hello")
	assert.NoError(t, err)
	assert.True(t, res.Valid)

	res, err = long.Validate(ctx, "hello")
	assert.NoError(t, err)
	assert.False(t, res.Valid)

	res, err = base.Validate(ctx, "  hello  ")
	assert.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "hello", res.Value)
}

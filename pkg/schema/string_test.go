package schema_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forma/pkg/rules"
	"github.com/dmitrymomot/forma/pkg/schema"
)

func TestStringSchema_Transforms(t *testing.T) {
	rt := newRuntime(t)

	tests := []struct {
		name     string
		schema   schema.StringSchema
		input    any
		expected any
	}{
		{"trim then slug", schema.NewString(rt).Trim().ToSlug(), "  João da Silva  ", "joao-da-silva"},
		{"strip tags", schema.NewString(rt).Trim().StripTags(), "  <b>Olá, preciso de ajuda!</b>  ", "Olá, preciso de ajuda!"},
		{"normalize email", schema.NewString(rt).Trim().NormalizeEmail(), "  TESTE@EMAIL.COM  ", "teste@email.com"},
		{"blacklist then whitelist", schema.NewString(rt).Blacklist(rules.Options{"chars": "a"}).Whitelist(rules.Options{"chars": "bcd"}), "abcdaaa", "bcd"},
		{"escape", schema.NewString(rt).EscapeHTML(), "<b>", "&lt;b&gt;"},
		{"case", schema.NewString(rt).ToUpperCase(), "abc", "ABC"},
		{"trim chars", schema.NewString(rt).Trim(rules.Options{"chars": "*"}), "**x**", "x"},
		{"non string passes through", schema.NewString(rt).Trim(), 42, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.schema.Validate(t.Context(), tt.input)
			require.NoError(t, err)
			assert.True(t, res.Valid)
			assert.Nil(t, res.Errors)
			assert.Equal(t, tt.expected, res.Value)
		})
	}
}

func TestStringSchema_Idempotent(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewString(rt).Trim().ToSlug().NormalizeEmail().StripTags()

	for _, input := range []string{"  João da Silva  ", "<p>Hi</p>", "  A@B.COM "} {
		first, err := s.Validate(t.Context(), input)
		require.NoError(t, err)
		second, err := s.Validate(t.Context(), first.Value)
		require.NoError(t, err)
		assert.Equal(t, first.Value, second.Value, input)
	}
}

func TestStringSchema_CollectsEveryFailure(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewString(rt).
		Trim().
		ValidateEmail().
		ValidateLength(rules.Options{"min": 5}).
		ValidateUppercase()

	res, err := s.Validate(t.Context(), "  ab  ")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, "ab", res.Value, "sanitized value is returned on failure")
	assert.Equal(t, []string{"validateEmail", "validateLength", "validateUppercase"}, rulesOf(res.Errors))

	issues := res.Errors.Issues
	assert.Equal(t, schema.RuleViolation, issues[0].Kind)
	assert.Equal(t, "Value must be a valid email address", issues[0].Message)
	assert.Nil(t, issues[0].Context)
	assert.Equal(t, "Length must be at least 5", issues[1].Message)
	assert.Equal(t, map[string]any{"min": 5}, issues[1].Context)
}

func TestStringSchema_MinMaxLength(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewString(rt).MinLength(2).MaxLength(4)

	tests := []struct {
		input string
		valid bool
	}{
		{"a", false},
		{"ab", true},
		{"abcd", true},
		{"abcde", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := s.Validate(t.Context(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, res.Valid)
		})
	}
}

func TestStringSchema_Custom(t *testing.T) {
	rt := newRuntime(t)

	t.Run("verdict message is kept", func(t *testing.T) {
		s := schema.NewString(rt).Custom("noAdmin", func(_ context.Context, _ *rules.Engine, v any, _ rules.Options) (rules.Verdict, error) {
			if v == "admin" {
				return rules.Verdict{Message: "Reserved name", Context: map[string]any{"name": v}}, nil
			}
			return rules.Pass("noAdmin"), nil
		})

		res, err := s.Validate(t.Context(), "admin")
		require.NoError(t, err)
		require.False(t, res.Valid)
		issue := res.Errors.Issues[0]
		assert.Equal(t, "noAdmin", issue.Rule)
		assert.Equal(t, "Reserved name", issue.Message)
		assert.Equal(t, map[string]any{"name": "admin"}, issue.Context)
	})

	t.Run("missing template uses the default message", func(t *testing.T) {
		s := schema.NewString(rt).Custom("never", func(context.Context, *rules.Engine, any, rules.Options) (rules.Verdict, error) {
			return rules.Fail("never", nil), nil
		})
		res, err := s.Validate(t.Context(), "x")
		require.NoError(t, err)
		assert.Equal(t, rules.DefaultMessage, res.Errors.Issues[0].Message)
	})

	t.Run("transform", func(t *testing.T) {
		s := schema.NewString(rt).Transform("reverse", func(_ context.Context, _ *rules.Engine, v any, _ rules.Options) (any, error) {
			r := []rune(v.(string))
			for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
				r[i], r[j] = r[j], r[i]
			}
			return string(r), nil
		})
		res, err := s.Validate(t.Context(), "abc")
		require.NoError(t, err)
		assert.Equal(t, "cba", res.Value)
	})

	t.Run("nil function panics", func(t *testing.T) {
		assert.Panics(t, func() { schema.NewString(rt).Custom("x", nil) })
		assert.Panics(t, func() { schema.NewString(rt).Transform("", nil) })
	})
}

func TestStringSchema_Faults(t *testing.T) {
	rt := newRuntime(t)
	boom := errors.New("boom")

	t.Run("unknown rule", func(t *testing.T) {
		_, err := schema.NewString(rt).Validator("validateNothing").Validate(t.Context(), "x")
		require.ErrorIs(t, err, rules.ErrUnknownRule)

		_, err = schema.NewString(rt).Sanitizer("nothing").Validate(t.Context(), "x")
		require.ErrorIs(t, err, rules.ErrUnknownRule)
	})

	t.Run("failing operation", func(t *testing.T) {
		s := schema.NewString(rt).Transform("explode", func(context.Context, *rules.Engine, any, rules.Options) (any, error) {
			return nil, boom
		})
		_, err := s.Validate(t.Context(), "x")
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "explode")
	})

	t.Run("bad option", func(t *testing.T) {
		_, err := schema.NewString(rt).ValidateMatches(rules.Options{"pattern": "("}).Validate(t.Context(), "x")
		require.ErrorIs(t, err, rules.ErrInvalidOption)
	})

	t.Run("zero value schema", func(t *testing.T) {
		_, err := schema.StringSchema{}.Validate(t.Context(), "x")
		require.ErrorIs(t, err, schema.ErrNoRuntime)
	})
}

func TestStringSchema_Locale(t *testing.T) {
	engine, err := rules.New()
	require.NoError(t, err)
	rt := schema.NewRuntime(engine)
	s := schema.NewString(rt).ValidateNotEmpty()

	res, err := s.Validate(t.Context(), "")
	require.NoError(t, err)
	assert.Equal(t, "Value cannot be empty", res.Errors.Issues[0].Message)

	require.NoError(t, engine.SetLocale("pt-BR"))
	res, err = s.Validate(t.Context(), "")
	require.NoError(t, err)
	assert.Equal(t, "O valor não pode estar vazio", res.Errors.Issues[0].Message)
}

func TestStringSchema_Formats(t *testing.T) {
	rt := newRuntime(t)
	s := schema.NewString(rt)

	tests := []struct {
		name   string
		schema schema.StringSchema
		valid  string
		bad    string
	}{
		{"email", s.ValidateEmail(), "a@b.com", "a@b"},
		{"url", s.ValidateURL(), "https://example.com", "not-url"},
		{"uuid", s.ValidateUUID(), "123e4567-e89b-42d3-a456-426614174000", "123"},
		{"ip", s.ValidateIP(), "192.168.1.1", "999.1.1.1"},
		{"slug", s.ValidateSlug(), "abc-def", "abc def"},
		{"iban", s.ValidateIBAN(), "DE89370400440532013000", "DE00"},
		{"credit card", s.ValidateCreditCard(), "4111111111111111", "4111111111111112"},
		{"password", s.ValidateStrongPassword(), "Abc123!@#", "abc"},
		{"postal code", s.ValidatePostalCode(rules.Options{"locale": "BR"}), "01310-100", "1"},
		{"tax id", s.ValidateTaxID(rules.Options{"locale": "BR"}), "529.982.247-25", "529.982.247-26"},
		{"mongo id", s.ValidateMongoID(), "507f1f77bcf86cd799439011", "xyz"},
		{"ascii", s.ValidateASCII(), "abc", "ção"},
		{"starts with", s.ValidateStartsWith(rules.Options{"prefix": "ab"}), "abc", "cab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.schema.Validate(t.Context(), tt.valid)
			require.NoError(t, err)
			assert.True(t, res.Valid, tt.valid)

			res, err = tt.schema.Validate(t.Context(), tt.bad)
			require.NoError(t, err)
			assert.False(t, res.Valid, tt.bad)
		})
	}
}

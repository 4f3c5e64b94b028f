package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/forma/pkg/sanitizer"
)

func TestEscapeHTML(t *testing.T) {
	escaped := sanitizer.EscapeHTML("<div>")
	assert.Equal(t, "&lt;div&gt;", escaped)
	assert.Equal(t, "<div>", sanitizer.UnescapeHTML(escaped))
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes simple tags",
			input:    "<b>abc</b>",
			expected: "abc",
		},
		{
			name:     "keeps unicode text",
			input:    "<b>Olá, preciso de ajuda!</b>",
			expected: "Olá, preciso de ajuda!",
		},
		{
			name:     "drops script content",
			input:    "hi<script>alert('x')</script>there",
			expected: "hithere",
		},
		{
			name:     "decodes entities",
			input:    "<p>fish &amp; chips</p>",
			expected: "fish & chips",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.StripTags(tt.input))
		})
	}
}

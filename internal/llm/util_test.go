package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain JSON unchanged",
			input:    `{"gaps": []}`,
			expected: `{"gaps": []}`,
		},
		{
			name:     "json fenced block",
			input:    "```json\n{\"gaps\": []}\n```",
			expected: `{"gaps": []}`,
		},
		{
			name:     "generic fenced block",
			input:    "```\n{\"gaps\": []}\n```",
			expected: `{"gaps": []}`,
		},
		{
			name:     "fenced block with language identifier",
			input:    "```javascript\n{\"gaps\": []}\n```",
			expected: `{"gaps": []}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{\"gaps\": []}\n  ",
			expected: `{"gaps": []}`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare object",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "leading and trailing prose",
			input:    "Here is the analysis you asked for:\n{\"a\": 1}\nLet me know if you need more.",
			expected: `{"a": 1}`,
		},
		{
			name:     "nested objects keep outermost braces",
			input:    `prose {"a": {"b": 2}} trailing`,
			expected: `{"a": {"b": 2}}`,
		},
		{
			name:     "no object returns input",
			input:    "no json here",
			expected: "no json here",
		},
		{
			name:     "mismatched braces return input",
			input:    "} {",
			expected: "} {",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractJSONObject(tt.input))
		})
	}
}

package llm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseModelID(t *testing.T) {
	tests := []struct {
		name             string
		input            string
		expectedProvider string
		expectedModel    string
	}{
		{"qualified id", "openai/gpt-4o-mini", "openai", "gpt-4o-mini"},
		{"bare model", "gpt-4o-mini", "", "gpt-4o-mini"},
		{"nested name keeps remainder", "meta-llama/llama-3.1-8b/instruct", "meta-llama", "llama-3.1-8b/instruct"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, model := ParseModelID(tt.input)
			require.Equal(t, tt.expectedProvider, provider)
			require.Equal(t, tt.expectedModel, model)
		})
	}
}

func TestResolveModelID(t *testing.T) {
	tests := []struct {
		name     string
		alias    string
		cfg      ModelConfig
		expected string
	}{
		{
			name:     "alias already qualified",
			alias:    "openai/gpt-4o-mini",
			cfg:      ModelConfig{Provider: "anthropic", ModelName: "claude-3-haiku"},
			expected: "openai/gpt-4o-mini",
		},
		{
			name:     "provider and model from config",
			alias:    "mini",
			cfg:      ModelConfig{Provider: "openai", ModelName: "gpt-4o-mini"},
			expected: "openai/gpt-4o-mini",
		},
		{
			name:     "model name empty falls back to alias",
			alias:    "gpt-4o-mini",
			cfg:      ModelConfig{Provider: "openai"},
			expected: "openai/gpt-4o-mini",
		},
		{
			name:     "no provider",
			alias:    "mini",
			cfg:      ModelConfig{ModelName: "gpt-4o-mini"},
			expected: "gpt-4o-mini",
		},
		{
			name:     "model name already qualified",
			alias:    "haiku",
			cfg:      ModelConfig{Provider: "openai", ModelName: "anthropic/claude-3-haiku"},
			expected: "anthropic/claude-3-haiku",
		},
		{
			name:     "alias is trimmed",
			alias:    "  mini ",
			cfg:      ModelConfig{Provider: "openai", ModelName: "gpt-4o-mini"},
			expected: "openai/gpt-4o-mini",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ResolveModelID(tt.alias, tt.cfg))
		})
	}
}

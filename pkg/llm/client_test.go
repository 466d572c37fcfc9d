package llm

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantModel string
		wantErr   error
	}{
		{"nothing configured", Config{}, "", ErrNotConfigured},
		{"gemini preferred", Config{GeminiKey: "g", OpenAIKey: "o"}, DefaultGeminiModel, nil},
		{"gemini custom model", Config{GeminiKey: "g", GeminiModel: "gemini-2.5-pro"}, "gemini-2.5-pro", nil},
		{"openai only key", Config{OpenAIKey: "o"}, "gpt-4o-mini", nil},
		{"anthropic only key", Config{AnthropicKey: "a"}, "claude-4.5-haiku", nil},
		{"explicit provider wins", Config{Provider: "OpenAI", GeminiKey: "g", OpenAIKey: "o"}, "gpt-4o-mini", nil},
		{"explicit provider without key", Config{Provider: "anthropic", OpenAIKey: "o"}, "", ErrNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.cfg)
			if tt.wantErr != nil {
				assert.Equal(t, true, errors.Is(err, tt.wantErr))
				assert.Equal(t, true, p == nil)
				return
			}
			assert.Equal(t, nil, err)
			assert.Equal(t, tt.wantModel, p.ModelName())
		})
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(Config{Provider: "mistral", OpenAIKey: "o"})
	assert.NotEqual(t, nil, err)
	assert.Equal(t, false, errors.Is(err, ErrNotConfigured))
}

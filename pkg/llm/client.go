package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Rohithsilent/P-o-P/internal/model"
	"github.com/Rohithsilent/P-o-P/pkg/sentiment"
)

// ErrNotConfigured means no API key is available for the selected provider.
var ErrNotConfigured = errors.New("llm: no provider configured")

type InsightInput struct {
	VideoTitle string
	Tally      sentiment.Tally
	Comments   []string
}

type InsightGenerator interface {
	GenerateInsights(ctx context.Context, input InsightInput) (*model.Insights, error)
}

type Answerer interface {
	Answer(ctx context.Context, question, background string) (string, error)
}

type Provider interface {
	InsightGenerator
	Answerer
	ModelName() string
}

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

type Config struct {
	Provider     string
	OpenAIKey    string
	AnthropicKey string
	GeminiKey    string
	GeminiModel  string
	Timeout      time.Duration
}

// New builds the configured provider. With no explicit provider the first
// one holding a key wins, Gemini first.
func New(cfg Config) (Provider, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		switch {
		case cfg.GeminiKey != "":
			provider = ProviderGemini
		case cfg.OpenAIKey != "":
			provider = ProviderOpenAI
		case cfg.AnthropicKey != "":
			provider = ProviderAnthropic
		default:
			return nil, ErrNotConfigured
		}
	}

	switch provider {
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is empty", ErrNotConfigured)
		}
		return NewOpenAIClient(cfg.OpenAIKey), nil
	case ProviderAnthropic:
		if cfg.AnthropicKey == "" {
			return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY is empty", ErrNotConfigured)
		}
		return NewAnthropicClient(cfg.AnthropicKey), nil
	case ProviderGemini:
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY is empty", ErrNotConfigured)
		}
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		return NewGeminiClient(cfg.GeminiKey, cfg.GeminiModel, &http.Client{Timeout: timeout}), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}

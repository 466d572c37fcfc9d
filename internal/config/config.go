package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Rohithsilent/P-o-P/pkg/llm"
	"github.com/Rohithsilent/P-o-P/pkg/youtube"

	"github.com/joho/godotenv"
)

type Config struct {
	YouTubeAPIKey string
	LLM           llm.Config

	DataDir     string
	MaxComments int
	HTTPTimeout time.Duration
	CacheTTL    time.Duration

	// Optional backends; empty disables the report archive and the cache/queue.
	DatabaseURL string
	RedisURL    string

	FrontendURL string
	Port        string
}

// Load reads the process environment, falling back to the given dotenv
// files (".env" when none are named) for variables that are unset or empty.
// Missing files are ignored.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	fileEnv := map[string]string{}
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range vals {
			if _, ok := fileEnv[k]; !ok {
				fileEnv[k] = v
			}
		}
	}

	get := func(key, def string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		if v := fileEnv[key]; v != "" {
			return v
		}
		return def
	}

	maxComments, err := strconv.Atoi(get("MAX_COMMENTS", strconv.Itoa(youtube.DefaultLimit)))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_COMMENTS: %w", err)
	}
	httpTimeout, err := time.ParseDuration(get("HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cacheTTL, err := time.ParseDuration(get("CACHE_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	cfg := &Config{
		YouTubeAPIKey: get("YOUTUBE_API_KEY", ""),
		LLM: llm.Config{
			Provider:     get("LLM_PROVIDER", ""),
			OpenAIKey:    get("OPENAI_API_KEY", ""),
			AnthropicKey: get("ANTHROPIC_API_KEY", ""),
			GeminiKey:    get("GEMINI_API_KEY", ""),
			GeminiModel:  get("GEMINI_MODEL", llm.DefaultGeminiModel),
			Timeout:      httpTimeout,
		},
		DataDir:     get("DATA_DIR", "."),
		MaxComments: maxComments,
		HTTPTimeout: httpTimeout,
		CacheTTL:    cacheTTL,
		DatabaseURL: get("DATABASE_URL", ""),
		RedisURL:    get("REDIS_URL", ""),
		FrontendURL: get("FRONTEND_URL", "http://localhost:3000"),
		Port:        get("PORT", "8080"),
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MaxComments <= 0 {
		return fmt.Errorf("MAX_COMMENTS must be positive, got %d", c.MaxComments)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative, got %s", c.CacheTTL)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	return nil
}

// RequireYouTube reports whether comment fetching can work at all.
func (c *Config) RequireYouTube() error {
	if c.YouTubeAPIKey == "" {
		return errors.New("YOUTUBE_API_KEY is required")
	}
	return nil
}

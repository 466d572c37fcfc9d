package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

var envKeys = []string{
	"YOUTUBE_API_KEY", "LLM_PROVIDER", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY",
	"GEMINI_MODEL", "DATA_DIR", "MAX_COMMENTS", "HTTP_TIMEOUT", "CACHE_TTL", "DATABASE_URL",
	"REDIS_URL", "FRONTEND_URL", "PORT",
}

func clearEnv(t *testing.T) {
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, nil, err)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, 500, cfg.MaxComments)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini-3-flash-preview", cfg.LLM.GeminiModel)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.NotEqual(t, nil, cfg.RequireYouTube())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "YOUTUBE_API_KEY=from-file\nMAX_COMMENTS=250\nPORT=9000\nCACHE_TTL=10m\n"
	assert.Equal(t, nil, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("PORT", "7070")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(path)

	assert.Equal(t, nil, err)
	assert.Equal(t, "from-file", cfg.YouTubeAPIKey)
	assert.Equal(t, 250, cfg.MaxComments)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAIKey)
	assert.Equal(t, nil, cfg.RequireYouTube())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MAX_COMMENTS", "many"},
		{"MAX_COMMENTS", "0"},
		{"HTTP_TIMEOUT", "soon"},
		{"CACHE_TTL", "-1m"},
		{"PORT", "http"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.NotEqual(t, nil, err)
		})
	}
}

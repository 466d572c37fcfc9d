package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rohithsilent/P-o-P/pkg/sentiment"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/go-playground/assert/v2"
)

func anthropicMessage(text string) []byte {
	b, _ := json.Marshal(map[string]any{
		"id":            "msg_1",
		"type":          "message",
		"role":          "assistant",
		"model":         "claude-haiku-4-5",
		"stop_reason":   "end_turn",
		"content":       []any{map[string]any{"type": "text", "text": text}},
		"usage":         map[string]any{"input_tokens": 10, "output_tokens": 20},
		"stop_sequence": nil,
	})
	return b
}

func TestAnthropicGenerateInsights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write(anthropicMessage("```json\n{\"loved\":\"- humour\",\"complaints\":\"- length\",\"improvements\":\"- trim\",\"summary\":\"\"}\n```"))
	}))
	defer srv.Close()

	client := NewAnthropicClient("test-key", option.WithBaseURL(srv.URL))
	ins, err := client.GenerateInsights(context.Background(), InsightInput{
		Tally: sentiment.Tally{Positive: 1, Negative: 1, Total: 2},
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, "- humour", ins.Loved)
	assert.Equal(t, "- length", ins.Complaints)
	assert.Equal(t, "- trim", ins.Improvements)
	assert.Equal(t, "Overall sentiment is mixed.", ins.Summary)
}

func TestAnthropicAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(anthropicMessage("Forty-two.\n"))
	}))
	defer srv.Close()

	answer, err := NewAnthropicClient("test-key", option.WithBaseURL(srv.URL)).Answer(context.Background(), "meaning of life?", "")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Forty-two.", answer)
}

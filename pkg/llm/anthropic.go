package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rohithsilent/P-o-P/internal/model"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string, opts ...option.RequestOption) *AnthropicClient {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := anthropic.NewClient(opts...)
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.ModelClaudeHaiku4_5,
		modelName: "claude-4.5-haiku",
	}
}

func (c *AnthropicClient) ModelName() string {
	return c.modelName
}

func (c *AnthropicClient) GenerateInsights(ctx context.Context, input InsightInput) (*model.Insights, error) {
	content, err := c.complete(ctx, insightSystemPrompt, buildInsightPrompt(input), 1024)
	if err != nil {
		return nil, err
	}

	ins, err := parseInsights(content)
	if err != nil {
		return nil, err
	}
	return fillDefaults(ins, input.Tally), nil
}

func (c *AnthropicClient) Answer(ctx context.Context, question, background string) (string, error) {
	content, err := c.complete(ctx, "", answerPrompt(question, background), 2048)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

func (c *AnthropicClient) complete(ctx context.Context, system, prompt string, maxTokens int64) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}
	return resp.Content[0].Text, nil
}

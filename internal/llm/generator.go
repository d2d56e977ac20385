package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/sevigo/aicommit/internal/core"
)

const (
	DefaultTemperature float32 = 0.7
	DefaultMaxTokens           = 100
)

var ErrNoChoices = errors.New("model returned no choices")

// Generator produces a completion for a system and a user prompt.
//
//go:generate mockgen -destination=../../mocks/mock_generator.go -package=mocks . Generator
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Option configures an OpenAIGenerator.
type Option func(*OpenAIGenerator)

func WithTemperature(t float32) Option {
	return func(g *OpenAIGenerator) { g.temperature = t }
}

func WithMaxTokens(n int) Option {
	return func(g *OpenAIGenerator) {
		if n > 0 {
			g.maxTokens = n
		}
	}
}

// OpenAIGenerator talks to any OpenAI-compatible chat completion endpoint.
// DeepSeek and DashScope both expose one.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	logger      *slog.Logger
}

func NewOpenAIGenerator(provider core.Provider, cfg core.ProviderConfig, logger *slog.Logger, opts ...Option) *OpenAIGenerator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = provider.DefaultEndpoint()
	}
	if endpoint != "" {
		clientCfg.BaseURL = strings.TrimSuffix(endpoint, "/")
	}

	model := cfg.Model
	if model == "" {
		model = provider.DefaultModel()
	}

	g := &OpenAIGenerator{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
		logger:      logger.With("provider", string(provider), "model", model),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *OpenAIGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	g.logger.Debug("requesting completion", "prompt_chars", len(system)+len(user))

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion via %s failed: %w", g.model, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	g.logger.Debug("received completion",
		"finish_reason", resp.Choices[0].FinishReason,
		"total_tokens", resp.Usage.TotalTokens)
	return resp.Choices[0].Message.Content, nil
}

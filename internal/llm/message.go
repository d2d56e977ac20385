package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sevigo/aicommit/internal/config"
	"github.com/sevigo/aicommit/internal/core"
)

var ErrEmptyMessage = errors.New("model returned an empty commit message")

// CommitMessage renders the user prompt for diff and asks gen for a message.
func CommitMessage(ctx context.Context, gen Generator, cfg core.PromptConfig, diff string) (string, error) {
	user := config.ApplyTemplate(cfg.UserPromptTemplate, map[string]string{"diff": diff})

	raw, err := gen.Generate(ctx, cfg.SystemPrompt, user)
	if err != nil {
		return "", fmt.Errorf("failed to generate commit message: %w", err)
	}

	msg := strings.TrimSpace(stripCodeFence(raw))
	if msg == "" {
		return "", ErrEmptyMessage
	}
	return msg, nil
}

// stripCodeFence removes a ``` fence wrapping the whole response, with or
// without a language tag.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}
	idx := strings.Index(trimmed, "\n")
	if idx < 0 {
		return s
	}
	inner := trimmed[idx+1:]
	if lastFence := strings.LastIndex(inner, "```"); lastFence >= 0 {
		inner = inner[:lastFence]
	}
	return strings.TrimSpace(inner)
}

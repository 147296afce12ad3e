// Package llm wraps the upstream chat-completion endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bluepixel/estatechat/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

// Completer produces a model reply from a system instruction and a user
// prompt. Implementations must honor context cancellation.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Client is an OpenAI-backed Completer.
type Client struct {
	api         *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
}

// NewClient builds a Client from configuration. BaseURL may point at any
// OpenAI-compatible endpoint.
func NewClient(cfg config.OpenAIConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("llm: API key must not be empty")
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		api:         openai.NewClientWithConfig(apiCfg),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: float32(cfg.Temperature),
		timeout:     timeout,
	}, nil
}

// Complete submits the prompt and returns the model's text. The call runs
// under the configured timeout; a timed-out or failed call returns an
// error and the caller is expected to degrade.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

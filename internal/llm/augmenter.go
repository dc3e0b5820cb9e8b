// Package llm wraps the optional generative model behind the Augmenter
// interface. Everything here is best-effort: the deterministic pipeline never
// depends on it and callers fall back on any error.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphaelgruber/beingbuddy-go/internal/config"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrUnavailable indicates the generative model could not produce a reply.
// Check with errors.Is(); callers must fall back to the deterministic path.
var ErrUnavailable = errors.New("augmenter unavailable")

// Augmenter produces a free-form conversational reply to the user's text.
type Augmenter interface {
	Reply(ctx context.Context, conversation string) (string, error)
	Model() string
}

// systemPrompt sets the companion's tone for every generated reply.
const systemPrompt = `You are Being Buddy, an empathetic, non-judgmental companion.
Respond to the user with warmth and understanding. Validate their feelings and reflect
what they shared. Never provide medical diagnosis; if severe distress is apparent,
offer supportive words and suggest professional help. Respond in plain text only.`

// Model wraps a langchaingo LLM as an Augmenter.
type Model struct {
	llm       llms.Model
	modelName string
}

// NewModel creates an LLM-backed augmenter based on configuration.
func NewModel(cfg config.Config) (*Model, error) {
	var model llms.Model
	var err error

	switch cfg.LLMProvider {
	case config.ProviderOllama:
		model, err = ollama.New(
			ollama.WithModel(cfg.LLMModel),
			ollama.WithServerURL(cfg.OllamaHost),
		)
		if err != nil {
			return nil, fmt.Errorf("create ollama model: %w", err)
		}

	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OpenAI API key required")
		}
		model, err = openai.New(
			openai.WithToken(cfg.OpenAIAPIKey),
			openai.WithModel(cfg.LLMModel),
		)
		if err != nil {
			return nil, fmt.Errorf("create openai model: %w", err)
		}

	case config.ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("Anthropic API key required")
		}
		model, err = anthropic.New(
			anthropic.WithToken(cfg.AnthropicAPIKey),
			anthropic.WithModel(cfg.LLMModel),
		)
		if err != nil {
			return nil, fmt.Errorf("create anthropic model: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}

	return &Model{
		llm:       model,
		modelName: cfg.LLMModel,
	}, nil
}

// Reply generates an empathetic response to the conversation.
func (m *Model) Reply(ctx context.Context, conversation string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, conversation),
	}

	response, err := m.llm.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%w: no response choices", ErrUnavailable)
	}

	return response.Choices[0].Content, nil
}

// Model returns the LLM model name.
func (m *Model) Model() string {
	return m.modelName
}

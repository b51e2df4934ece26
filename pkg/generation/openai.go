package generation

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// OpenAIBackend generates text through an OpenAI-compatible chat completions API.
// Gemini models are reachable this way through Google's compatibility endpoint
type OpenAIBackend struct {
	client openai.Client
	model  string
}

// NewOpenAIBackend creates a chat completions client for cfg.BaseURL. Failed
// requests are not retried
func NewOpenAIBackend(cfg Config, opts ...option.RequestOption) *OpenAIBackend {
	opts = append([]option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
	}, opts...)

	return &OpenAIBackend{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

// Generate sends the prompt as a single user message
func (o *OpenAIBackend) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

// Close is a no-op; the HTTP client holds no dedicated resources
func (o *OpenAIBackend) Close() error {
	return nil
}

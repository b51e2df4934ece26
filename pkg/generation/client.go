package generation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ethanbaker/sparky/pkg/markdown"
)

// ErrEmptyResponse is returned when the provider produced no text
var ErrEmptyResponse = errors.New("generation provider returned no text")

// Generator submits a prompt to a text generation service
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Backend is a Generator holding resources that must be released
type Backend interface {
	Generator
	Close() error
}

// NewBackend creates the backend selected by cfg.Provider
func NewBackend(ctx context.Context, cfg Config) (Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIBackend(cfg), nil
	default:
		return NewGeminiBackend(ctx, cfg)
	}
}

// Client combines an instruction template with a body, generates a reply
// and normalizes its markdown
type Client struct {
	generator Generator
}

// NewClient creates a generation client over the given generator
func NewClient(generator Generator) *Client {
	return &Client{generator: generator}
}

// Generate submits template + "\n" + body. Provider failures are returned
// unchanged in meaning and are not retried
func (c *Client) Generate(ctx context.Context, body, template string) (string, error) {
	prompt := template + "\n" + body

	start := time.Now()
	text, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if text == "" {
		return "", ErrEmptyResponse
	}

	log.Printf("[GENERATION]: Generated %d characters in %s", len(text), time.Since(start).Round(time.Millisecond))

	return markdown.RepairTables(text), nil
}

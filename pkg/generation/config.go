package generation

import (
	"fmt"

	"github.com/ethanbaker/sparky/pkg/utils"
)

const (
	// ProviderGemini talks to the Gemini API through the Google SDK
	ProviderGemini = "gemini"

	// ProviderOpenAI talks to any OpenAI-compatible chat completions endpoint
	ProviderOpenAI = "openai"
)

const (
	DefaultModel         = "gemini-2.0-flash"
	DefaultOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
)

// Config describes how to reach the text generation service
type Config struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"-"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
}

// ConfigFromEnv builds a generation config from the process configuration
func ConfigFromEnv(cfg *utils.Config) Config {
	return Config{
		Provider: cfg.GetWithDefault("GENERATION_PROVIDER", ProviderGemini),
		APIKey:   cfg.Get("GOOGLE_API_KEY"),
		Model:    cfg.GetWithDefault("GENERATION_MODEL", DefaultModel),
		BaseURL:  cfg.GetWithDefault("GENERATION_BASE_URL", DefaultOpenAIBaseURL),
	}
}

// Validate reports configuration that cannot produce a working client
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY not set in environment")
	}
	if c.Model == "" {
		return fmt.Errorf("generation model must not be empty")
	}

	switch c.Provider {
	case ProviderGemini:
	case ProviderOpenAI:
		if c.BaseURL == "" {
			return fmt.Errorf("base url is required for provider %q", c.Provider)
		}
	default:
		return fmt.Errorf("unknown generation provider %q", c.Provider)
	}

	return nil
}

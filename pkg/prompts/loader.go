package prompts

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Templates holds the two instructional texts prepended to generation requests
type Templates struct {
	Summary  string `yaml:"summary"`
	Guidance string `yaml:"guidance"`
}

// Defaults returns the built-in templates
func Defaults() Templates {
	return Templates{
		Summary:  Summary,
		Guidance: Guidance,
	}
}

// Load reads template overrides from a YAML file. Templates missing from the
// file keep their built-in text
func Load(filePath string) (Templates, error) {
	templates := Defaults()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return templates, fmt.Errorf("failed to read prompts file %s: %w", filePath, err)
	}

	var overrides Templates
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return templates, fmt.Errorf("failed to parse prompts file %s: %w", filePath, err)
	}

	if text := strings.TrimSpace(overrides.Summary); text != "" {
		templates.Summary = text
	}
	if text := strings.TrimSpace(overrides.Guidance); text != "" {
		templates.Guidance = text
	}

	return templates, nil
}

// LoadWithFallback loads overrides from filePath when it is set, falling back
// to the built-in templates on any error
func LoadWithFallback(filePath string) Templates {
	if filePath == "" {
		return Defaults()
	}

	templates, err := Load(filePath)
	if err != nil {
		log.Printf("[PROMPTS]: Warning, using built-in templates: %v", err)
		return Defaults()
	}

	return templates
}

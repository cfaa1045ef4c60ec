package llm

import (
	"fmt"
	"strings"
)

// NewExtractor creates an extractor based on configuration. An empty
// provider name returns (nil, nil): external extraction disabled.
func NewExtractor(config Config) (Extractor, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIExtractor(config)

	case "anthropic", "claude":
		return NewAnthropicExtractor(config)

	case "ollama":
		return NewOllamaExtractor(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown extractor provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}

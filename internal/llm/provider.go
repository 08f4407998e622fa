package llm

import (
	"context"
	"fmt"

	"github.com/obitwatch/obitwatch/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Digest generates a prose digest of the record set
	Digest(ctx context.Context, req DigestRequest) (*DigestResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// DigestRequest contains the input for digest generation
type DigestRequest struct {
	// Entries is the deduplicated record set to summarize
	Entries []model.Entry

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// DigestResponse contains the provider's output
type DigestResponse struct {
	// Text is the generated digest
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai" or "" (disabled)
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for OpenAI-compatible endpoints (e.g. a local server)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Timeout:   30,
		MaxTokens: 800,
	}
}

// ConfigFromModel converts the application LLM configuration
func ConfigFromModel(cfg model.LLMConfig) Config {
	out := DefaultConfig()
	out.Provider = cfg.Provider
	out.Model = cfg.Model
	out.APIKey = cfg.APIKey
	out.BaseURL = cfg.BaseURL
	if cfg.Timeout > 0 {
		out.Timeout = cfg.Timeout
	}
	if cfg.MaxTokens > 0 {
		out.MaxTokens = cfg.MaxTokens
	}
	return out
}

// maxPromptEntries caps how many records go into the prompt to avoid
// token bloat on year-aggregate runs.
const maxPromptEntries = 40

// BuildPrompt constructs the default digest prompt. The model only sees
// the extracted records; it must not speculate beyond them.
func BuildPrompt(entries []model.Entry) string {
	prompt := fmt.Sprintf(`You are summarizing a list of notable deaths extracted from Wikipedia list pages.

RULES:
1. Mention only people from the list below. Do not add names from your own knowledge.
2. Do not speculate about causes of death that are not listed.
3. Keep it to 3-4 sentences, neutral in tone.

Records (%d total):
`, len(entries))

	for i, e := range entries {
		if i >= maxPromptEntries {
			prompt += fmt.Sprintf("... and %d more records\n", len(entries)-maxPromptEntries)
			break
		}
		prompt += "- " + e.String() + "\n"
	}

	prompt += "\nProvide a 3-4 sentence digest of this record set."
	return prompt
}

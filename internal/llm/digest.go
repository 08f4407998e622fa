package llm

import (
	"context"
	"fmt"

	"github.com/obitwatch/obitwatch/internal/model"
)

// Digester generates optional prose digests of a record set.
// It is strictly additive: extraction never depends on its output.
type Digester struct {
	provider Provider
	config   Config
}

// NewDigester creates a digester for the configured provider.
// An empty provider name yields a disabled digester, not an error.
func NewDigester(config Config) (*Digester, error) {
	if config.Provider == "" {
		return &Digester{config: config}, nil
	}

	var provider Provider
	var err error

	switch config.Provider {
	case "openai":
		provider, err = NewOpenAIProvider(config)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", config.Provider)
	}
	if err != nil {
		return nil, err
	}

	return &Digester{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether digest generation is configured
func (d *Digester) IsEnabled() bool {
	return d.provider != nil
}

// Generate produces a digest of the entries, or nil when disabled.
func (d *Digester) Generate(ctx context.Context, entries []model.Entry) (*model.DigestSummary, error) {
	if d.provider == nil {
		return nil, nil
	}

	resp, err := d.provider.Digest(ctx, DigestRequest{
		Entries:   entries,
		Model:     d.config.Model,
		MaxTokens: d.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate digest: %w", err)
	}

	return &model.DigestSummary{
		Enabled:  true,
		Provider: d.provider.Name(),
		Model:    resp.Model,
		Text:     resp.Text,
	}, nil
}

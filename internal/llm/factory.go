package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/prepmap/internal/store"
)

// NewProviderFromEnv builds a Provider from the environment: an explicit
// PREPMAP_LLM_PROVIDER wins, otherwise standard API key env vars are probed
// in priority order.
func NewProviderFromEnv(ctx context.Context, auditRepo store.GenerationEventRepo) (Provider, error) {
	var cfg Config
	if os.Getenv("PREPMAP_LLM_PROVIDER") != "" {
		cfg = ConfigFromEnv()
	} else {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no API key found: set PREPMAP_LLM_PROVIDER or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY")
		}
		cfg = discovered
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, auditRepo)
}

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and audit-logging middleware.
func NewProvider(ctx context.Context, cfg Config, auditRepo store.GenerationEventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		oc := cfg.OpenAI
		if oc.BaseURL == "" {
			oc.BaseURL = openRouterBaseURL
		}
		base, err = NewOpenAIProvider(oc)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → audit → base
	audited := WithAudit(base, cfg.Provider, auditRepo)
	retried := WithRetry(audited, cfg.Retry)

	return retried, nil
}

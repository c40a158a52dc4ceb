package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/mentor/internal/store"
)

// NewProvider creates a Provider from configuration.
// The provider is wrapped with event logging and a per-call deadline.
// There is deliberately no retry layer: the orchestrator's failure policy
// is a single attempt followed by the component's fallback result.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → timeout → logging → base
	logged := WithLogging(base, eventRepo)
	return WithTimeout(logged, cfg.Timeout), nil
}

// NewProviderFromEnv builds a Provider from MENTOR_* env config, falling
// back to discovery of standard API key env vars.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}

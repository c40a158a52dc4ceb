package llm

import (
	"testing"
	"time"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MENTOR_LLM_PROVIDER", "MENTOR_LLM_TIMEOUT",
		"MENTOR_ANTHROPIC_API_KEY", "MENTOR_ANTHROPIC_MODEL",
		"MENTOR_OPENAI_API_KEY", "MENTOR_OPENAI_MODEL", "MENTOR_OPENAI_BASE_URL",
		"MENTOR_GEMINI_API_KEY", "MENTOR_GEMINI_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Fatalf("expected anthropic default, got %q", cfg.Provider)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("expected 30s default timeout, got %v", cfg.Timeout)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("MENTOR_LLM_PROVIDER", "openai")
	t.Setenv("MENTOR_OPENAI_API_KEY", "sk-test")
	t.Setenv("MENTOR_OPENAI_MODEL", "gpt-4o")
	t.Setenv("MENTOR_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("expected openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("unexpected openai config: %+v", cfg.OpenAI)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config: %v", err)
	}
}

func TestConfig_ValidateMissingKey(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing anthropic key")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock provider needs no key: %v", err)
	}

	cfg.Provider = "telepathy"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestDiscoverConfig(t *testing.T) {
	clearProviderEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no discovery with no keys set")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "anthropic" {
		t.Fatalf("expected anthropic discovery, got %+v ok=%v", cfg, ok)
	}

	// Gemini wins over the others when several keys are present.
	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Fatalf("expected gemini to win discovery, got %+v ok=%v", cfg, ok)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.LLM.Provider != ProviderGoogle {
		t.Errorf("expected default provider %q, got %q", ProviderGoogle, cfg.LLM.Provider)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.RateLimit.WindowSeconds != 60 || cfg.RateLimit.MaxRequests != 20 {
		t.Errorf("expected 20 requests per 60s, got %d per %ds",
			cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSeconds)
	}
	if cfg.Pricing.PricePerPound != 5.50 {
		t.Errorf("expected price per pound 5.50, got %g", cfg.Pricing.PricePerPound)
	}
	if len(cfg.LLM.Models) == 0 {
		t.Error("expected a default model list")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.expressbot.yml")

	original := DefaultConfig()
	original.LLM.Provider = ProviderOpenAI
	original.LLM.Models = []string{"gpt-4o-mini"}
	original.Server.Port = 9090
	original.Database.Path = "other/bot.db"
	original.Pricing.MinimumCharge = 12.0

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.LLM.Provider != original.LLM.Provider {
		t.Errorf("provider: got %q, want %q", loaded.LLM.Provider, original.LLM.Provider)
	}
	if len(loaded.LLM.Models) != 1 || loaded.LLM.Models[0] != "gpt-4o-mini" {
		t.Errorf("models: got %v", loaded.LLM.Models)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("port: got %d, want 9090", loaded.Server.Port)
	}
	if loaded.Database.Path != original.Database.Path {
		t.Errorf("database path: got %q, want %q", loaded.Database.Path, original.Database.Path)
	}
	if loaded.Pricing.MinimumCharge != 12.0 {
		t.Errorf("minimum charge: got %g, want 12.0", loaded.Pricing.MinimumCharge)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.LLM.Provider != ProviderGoogle {
		t.Errorf("expected default provider, got %q", cfg.LLM.Provider)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("EXPRESSBOT_LLM__PROVIDER", "openai")
	os.Setenv("EXPRESSBOT_SERVER__PORT", "3000")
	defer os.Unsetenv("EXPRESSBOT_LLM__PROVIDER")
	defer os.Unsetenv("EXPRESSBOT_SERVER__PORT")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.LLM.Provider != ProviderOpenAI {
		t.Errorf("env override failed: got %q, want %q", loaded.LLM.Provider, ProviderOpenAI)
	}
	if loaded.Server.Port != 3000 {
		t.Errorf("env override failed: got port %d, want 3000", loaded.Server.Port)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalidProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.Provider = "invalid"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid provider")
	}
}

func TestValidateEmptyProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.Provider = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty provider")
	}
}

func TestValidateEmptyModels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.Models = nil
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty model list")
	}
}

func TestValidateBadPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for port 0")
	}
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestValidateEmptyDatabasePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty database path")
	}
}

func TestValidateBadRateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimit.MaxRequests = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero max_requests")
	}
}

func TestValidateBadPricing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pricing.PricePerPound = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero price_per_pound")
	}

	cfg = DefaultConfig()
	cfg.Pricing.InsuranceRate = -0.01
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative insurance_rate")
	}
}

func TestRates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pricing.PricePerPound = 6.0
	r := cfg.Rates()
	if r.PricePerPound != 6.0 || r.MinimumCharge != 15.00 {
		t.Errorf("Rates() = %+v", r)
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	tests := []struct {
		provider ProviderType
		want     string
	}{
		{ProviderGoogle, "GEMINI_API_KEY"},
		{ProviderOpenAI, "OPENAI_API_KEY"},
		{"other", ""},
	}
	for _, tt := range tests {
		got := APIKeyEnvVar(tt.provider)
		if got != tt.want {
			t.Errorf("APIKeyEnvVar(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}

package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderGoogle ProviderType = "google"
	ProviderOpenAI ProviderType = "openai"
)

// Config is the top-level expressbot configuration, corresponding to
// expressbot.yml.
type Config struct {
	Server    ServerConfig    `yaml:"server" koanf:"server"`
	Database  DatabaseConfig  `yaml:"database" koanf:"database"`
	LLM       LLMConfig       `yaml:"llm" koanf:"llm"`
	RateLimit RateLimitConfig `yaml:"rate_limit" koanf:"rate_limit"`
	Pricing   PricingConfig   `yaml:"pricing" koanf:"pricing"`
	Support   SupportConfig   `yaml:"support" koanf:"support"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int    `yaml:"port" koanf:"port"`
	BaseURL string `yaml:"base_url" koanf:"base_url"`
	// AllowAllOrigins opens CORS up for local frontend development.
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `yaml:"path" koanf:"path"`
}

// LLMConfig holds completion provider settings. Models are tried in order
// until one answers.
type LLMConfig struct {
	Provider    ProviderType `yaml:"provider" koanf:"provider"`
	Models      []string     `yaml:"models" koanf:"models"`
	MaxTokens   int          `yaml:"max_tokens" koanf:"max_tokens"`
	Temperature float64      `yaml:"temperature" koanf:"temperature"`
}

// RateLimitConfig bounds how many completion calls one client gets per window.
type RateLimitConfig struct {
	WindowSeconds int `yaml:"window_seconds" koanf:"window_seconds"`
	MaxRequests   int `yaml:"max_requests" koanf:"max_requests"`
}

// PricingConfig is the rate card for shipping quotes.
type PricingConfig struct {
	PricePerPound float64 `yaml:"price_per_pound" koanf:"price_per_pound"`
	MinimumCharge float64 `yaml:"minimum_charge" koanf:"minimum_charge"`
	HandlingFee   float64 `yaml:"handling_fee" koanf:"handling_fee"`
	InsuranceRate float64 `yaml:"insurance_rate" koanf:"insurance_rate"`
}

// SupportConfig identifies the human support channel quoted in fallbacks.
type SupportConfig struct {
	WhatsApp string `yaml:"whatsapp" koanf:"whatsapp"`
}

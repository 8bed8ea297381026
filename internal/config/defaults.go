package config

import (
	"github.com/theyellowexpress/expressbot/internal/llm"
	"github.com/theyellowexpress/expressbot/internal/pricing"
)

// DefaultConfig returns a Config with sensible defaults. The pricing values
// mirror the published rate card and the rate limit matches what the hosted
// bot enforced.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			BaseURL:         "https://theyellowexpress.com",
			AllowAllOrigins: false,
		},
		Database: DatabaseConfig{
			Path: "data/expressbot.db",
		},
		LLM: LLMConfig{
			Provider:    ProviderGoogle,
			Models:      append([]string(nil), llm.DefaultModels...),
			MaxTokens:   500,
			Temperature: 0.7,
		},
		RateLimit: RateLimitConfig{
			WindowSeconds: 60,
			MaxRequests:   20,
		},
		Pricing: PricingConfig{
			PricePerPound: pricing.DefaultRates.PricePerPound,
			MinimumCharge: pricing.DefaultRates.MinimumCharge,
			HandlingFee:   pricing.DefaultRates.HandlingFee,
			InsuranceRate: pricing.DefaultRates.InsuranceRate,
		},
		Support: SupportConfig{
			WhatsApp: "+503 1234 5678",
		},
	}
}

// Rates converts the pricing section into the calculator's rate card.
func (c *Config) Rates() pricing.Rates {
	return pricing.Rates{
		PricePerPound: c.Pricing.PricePerPound,
		MinimumCharge: c.Pricing.MinimumCharge,
		HandlingFee:   c.Pricing.HandlingFee,
		InsuranceRate: c.Pricing.InsuranceRate,
	}
}

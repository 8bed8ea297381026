package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to expressbot.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to expressbot! Let's configure your instance.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"google", "openai"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.LLM.Provider = ProviderType(providerStr)

	// 2. HTTP port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Database path.
	dbPrompt := promptui.Prompt{
		Label:   "SQLite database path",
		Default: cfg.Database.Path,
	}
	if cfg.Database.Path, err = dbPrompt.Run(); err != nil {
		return nil, fmt.Errorf("database path: %w", err)
	}

	// 4. Public base URL used in tracking links.
	urlPrompt := promptui.Prompt{
		Label:   "Public base URL",
		Default: cfg.Server.BaseURL,
	}
	if cfg.Server.BaseURL, err = urlPrompt.Run(); err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}

	// 5. Support WhatsApp line.
	supportPrompt := promptui.Prompt{
		Label:   "Support WhatsApp number",
		Default: cfg.Support.WhatsApp,
	}
	if cfg.Support.WhatsApp, err = supportPrompt.Run(); err != nil {
		return nil, fmt.Errorf("support whatsapp: %w", err)
	}

	// Check for API key.
	if envVar := APIKeyEnvVar(cfg.LLM.Provider); envVar != "" {
		if os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running expressbot serve.\n", envVar)
		}
	}

	configPath := "expressbot.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}

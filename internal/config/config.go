// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Accounts AccountsConfig
	UI       UIConfig
}

// AccountsConfig controls where the demo accounts come from.
type AccountsConfig struct {
	SeedPath string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string
	MaxRows        int
}

// Load reads configuration from file and env. Env var overrides use prefix
// BANKIST_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("accounts.seed_path", "")
	v.SetDefault("ui.currency_symbol", "€")
	v.SetDefault("ui.max_rows", 20)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BANKIST_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "bankist"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BANKIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.MaxRows <= 0 {
		c.UI.MaxRows = 20
	}
	return c, nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BANKIST_CONFIG", filepath.Join(t.TempDir(), "nonexistent.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "€", cfg.UI.CurrencySymbol)
	require.Equal(t, 20, cfg.UI.MaxRows)
	require.Empty(t, cfg.Accounts.SeedPath)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BANKIST_CONFIG", filepath.Join(t.TempDir(), "nonexistent.toml"))
	t.Setenv("BANKIST_UI_CURRENCY_SYMBOL", "$")
	t.Setenv("BANKIST_UI_MAX_ROWS", "8")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "$", cfg.UI.CurrencySymbol)
	require.Equal(t, 8, cfg.UI.MaxRows)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[ui]
currency_symbol = "£"
max_rows = 12

[accounts]
seed_path = "/tmp/accounts.yaml"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("BANKIST_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "£", cfg.UI.CurrencySymbol)
	require.Equal(t, 12, cfg.UI.MaxRows)
	require.Equal(t, "/tmp/accounts.yaml", cfg.Accounts.SeedPath)
}

func TestLoadSanitizesMaxRows(t *testing.T) {
	t.Setenv("BANKIST_CONFIG", filepath.Join(t.TempDir(), "nonexistent.toml"))
	t.Setenv("BANKIST_UI_MAX_ROWS", "-3")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 20, cfg.UI.MaxRows)
}

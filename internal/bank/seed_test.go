package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDemoAccounts(t *testing.T) {
	accounts := DemoAccounts()
	require.Len(t, accounts, 5)

	handles := make([]string, 0, len(accounts))
	for _, a := range accounts {
		handles = append(handles, a.Username)
	}
	require.Equal(t, []string{"js", "jd", "stw", "ss", "up"}, handles)

	js := accounts[0]
	require.Equal(t, 1111, js.PIN)
	require.InDelta(t, 1.2, js.InterestRate, 1e-9)
	require.InDelta(t, 3840, Balance(js.Movements), 1e-9)
}

func TestDemoAccountsAreFreshPerCall(t *testing.T) {
	a := DemoAccounts()
	a[0].Movements = append(a[0].Movements, 99999)
	b := DemoAccounts()
	require.Len(t, b[0].Movements, 8)
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	data := `accounts:
  - owner: Ada Lovelace
    pin: 1234
    interest_rate: 1.1
    movements: [100, -50, 2000]
  - owner: Grace Hopper
    pin: 5678
    interest_rate: 0.9
    movements: [700]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	accounts, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	require.Equal(t, "al", accounts[0].Username)
	require.Equal(t, 1234, accounts[0].PIN)
	require.Equal(t, []float64{100, -50, 2000}, accounts[0].Movements)
	require.Equal(t, "gh", accounts[1].Username)
}

func TestLoadSeedErrors(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("accounts: []\n"), 0o644))
	_, err = LoadSeed(empty)
	require.ErrorContains(t, err, "no accounts")

	unowned := filepath.Join(t.TempDir(), "unowned.yaml")
	require.NoError(t, os.WriteFile(unowned, []byte("accounts:\n  - pin: 1\n"), 0o644))
	_, err = LoadSeed(unowned)
	require.ErrorContains(t, err, "no owner")
}

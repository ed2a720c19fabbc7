package bank

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DemoAccounts returns the built-in demo data set. Fresh records every call;
// a closed demo account stays closed only for the current run.
func DemoAccounts() []*Account {
	return []*Account{
		NewAccount("Jonas Schmedtmann", 1111, 1.2, []float64{200, 450, -400, 3000, -650, -130, 70, 1300}),
		NewAccount("Jessica Davis", 2222, 1.5, []float64{5000, 3400, -150, -790, -3210, -1000, 8500, -30}),
		NewAccount("Steven Thomas Williams", 3333, 0.7, []float64{200, -200, 340, -300, -20, 50, 400, -460}),
		NewAccount("Sarah Smith", 4444, 1, []float64{430, 1000, 700, 50, 90}),
		NewAccount("Uday Paleti", 5555, 1, []float64{100, 1000, -700, -50, -90, 3000, 2000, -1000}),
	}
}

type seedFile struct {
	Accounts []seedAccount `yaml:"accounts"`
}

type seedAccount struct {
	Owner        string    `yaml:"owner"`
	PIN          int       `yaml:"pin"`
	InterestRate float64   `yaml:"interest_rate"`
	Movements    []float64 `yaml:"movements"`
}

// LoadSeed reads a YAML seed file and builds accounts from it. The file is
// read-only input for one run; nothing is ever written back.
func LoadSeed(path string) ([]*Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if len(f.Accounts) == 0 {
		return nil, fmt.Errorf("seed file %s contains no accounts", path)
	}
	accounts := make([]*Account, 0, len(f.Accounts))
	for i, sa := range f.Accounts {
		if sa.Owner == "" {
			return nil, fmt.Errorf("seed file %s: account %d has no owner", path, i)
		}
		accounts = append(accounts, NewAccount(sa.Owner, sa.PIN, sa.InterestRate, sa.Movements))
	}
	return accounts, nil
}

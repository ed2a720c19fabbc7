package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spkommal/bankist-app/internal/bank"
	"github.com/spkommal/bankist-app/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	accounts := bank.DemoAccounts()
	if cfg.Accounts.SeedPath != "" {
		accounts, err = bank.LoadSeed(cfg.Accounts.SeedPath)
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	store := bank.NewStore(accounts)
	session := bank.NewSession(store, cfg.UI.CurrencySymbol)

	p := tea.NewProgram(newModel(store, session, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("bankist: %v", err)
	}
}

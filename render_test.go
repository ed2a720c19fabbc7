package main

import (
	"strings"
	"testing"

	"github.com/spkommal/bankist-app/internal/bank"
	"github.com/spkommal/bankist-app/internal/config"
)

func newRenderModel(t *testing.T) model {
	t.Helper()
	store := bank.NewStore(bank.DemoAccounts())
	session := bank.NewSession(store, "€")
	cfg := config.Config{}
	cfg.UI.CurrencySymbol = "€"
	cfg.UI.MaxRows = 20
	m := newModel(store, session, cfg)
	m.width = 100
	m.height = 40
	return m
}

func TestRenderMovementsLabelsFollowDisplayOrder(t *testing.T) {
	rows := bank.DisplayMovements([]float64{200, -400, 3000}, false)
	out := renderMovements(rows, 0, 0, 10, 80, "€")

	lines := strings.Split(out, "\n")
	// line 0 is the table header; first data row is the most recent movement.
	if !strings.Contains(lines[1], "1") || !strings.Contains(lines[1], "3000.00€") {
		t.Errorf("first row = %q, want position 1 with 3000.00€", lines[1])
	}
	if !strings.Contains(lines[1], "deposit") {
		t.Errorf("first row = %q, want deposit tag", lines[1])
	}
	if !strings.Contains(lines[2], "withdrawal") {
		t.Errorf("second row = %q, want withdrawal tag", lines[2])
	}
}

func TestRenderMovementsSortedReordersLabels(t *testing.T) {
	rows := bank.DisplayMovements([]float64{200, -400, 3000}, true)
	out := renderMovements(rows, 0, 0, 10, 80, "€")

	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[1], "-400.00€") {
		t.Errorf("first sorted row = %q, want -400.00€", lines[1])
	}
	if !strings.Contains(lines[3], "3000.00€") {
		t.Errorf("last sorted row = %q, want 3000.00€", lines[3])
	}
}

func TestRenderMovementsScrollIndicator(t *testing.T) {
	rows := bank.DisplayMovements([]float64{1, 2, 3, 4, 5, 6, 7, 8}, false)
	out := renderMovements(rows, 0, 0, 3, 80, "€")
	if !strings.Contains(out, "showing 1-3 of 8") {
		t.Errorf("missing scroll indicator in:\n%s", out)
	}
}

func TestAppViewShowsLedgerSummaries(t *testing.T) {
	m := newRenderModel(t)
	m = flowLogin(t, m, "js", "1111")

	view := m.View()
	for _, want := range []string{
		"3840.00€", // balance
		"5020.00€", // income
		"1180.00€", // expense
		"59.40€",   // qualifying interest at 1.2%
		"Jonas Schmedtmann",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("app view missing %q", want)
		}
	}
}

func TestAppViewSortedFlag(t *testing.T) {
	m := newRenderModel(t)
	m = flowLogin(t, m, "js", "1111")

	if strings.Contains(m.View(), "sorted ↑") {
		t.Fatal("sorted flag shown before toggling")
	}
	m = flowPress(t, m, "s")
	if !strings.Contains(m.View(), "sorted ↑") {
		t.Error("sorted flag missing after toggle")
	}
}

func TestLoginViewHidesAccountData(t *testing.T) {
	m := newRenderModel(t)
	view := m.View()
	if strings.Contains(view, "Movements") || strings.Contains(view, "3840.00") {
		t.Error("login view leaks account data")
	}
	if !strings.Contains(view, "Log in") {
		t.Error("login view missing login section")
	}
}

func TestModalViewRendersTitleAndFields(t *testing.T) {
	m := newRenderModel(t)
	m = flowLogin(t, m, "js", "1111")
	m = flowPress(t, m, "t")

	view := m.View()
	if !strings.Contains(view, "Transfer money") {
		t.Error("transfer modal title missing")
	}
	if !strings.Contains(view, "to>") || !strings.Contains(view, "amount>") {
		t.Error("transfer modal fields missing")
	}
}

func TestRenderHeader(t *testing.T) {
	out := renderHeader(appName, 80)
	if !strings.Contains(out, "Bankist") {
		t.Errorf("header = %q", out)
	}
}

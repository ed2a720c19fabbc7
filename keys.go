package main

import "github.com/charmbracelet/bubbles/key"

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Transfer key.Binding
	Loan     key.Binding
	Close    key.Binding
	Sort     key.Binding
	Logout   key.Binding
	UpDown   key.Binding
	Enter    key.Binding
	Cancel   key.Binding
	Switch    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Transfer: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "transfer")),
		Loan:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "loan")),
		Close:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close account")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Logout:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "log out")),
		UpDown:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("j/k", "scroll")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// loginBindings is the footer help on the login view. Plain q types into the
// username field there, so only ctrl+c quits.
func (k keyMap) loginBindings() []key.Binding {
	return []key.Binding{k.Switch, k.Enter, k.ForceQuit}
}

// appBindings is the footer help on the logged-in view.
func (k keyMap) appBindings() []key.Binding {
	return []key.Binding{k.Transfer, k.Loan, k.Close, k.Sort, k.UpDown, k.Logout, k.Quit}
}

// modalBindings is the footer help while a form modal is open.
func (k keyMap) modalBindings() []key.Binding {
	return []key.Binding{k.Switch, k.Enter, k.Cancel}
}

// Package bank holds the in-memory banking domain: accounts, the account
// store, the ledger reductions, and the session controller. Nothing in this
// package touches the terminal; the root package renders from it.
package bank

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Account is one demo bank account. Movements are signed amounts in
// chronological append order: positive deposits, negative withdrawals.
// Balance is never stored; it is recomputed from Movements on demand.
type Account struct {
	ID           string
	Owner        string
	Username     string
	Movements    []float64
	InterestRate float64 // percent
	PIN          int
}

// NewAccount builds an account with a generated id and a derived username.
func NewAccount(owner string, pin int, interestRate float64, movements []float64) *Account {
	return &Account{
		ID:           uuid.NewString(),
		Owner:        owner,
		Username:     DeriveUsername(owner),
		Movements:    movements,
		InterestRate: interestRate,
		PIN:          pin,
	}
}

// DeriveUsername lowercases the first rune of each whitespace-separated token
// of owner and concatenates them: "Steven Thomas Williams" -> "stw".
// Usernames are not guaranteed unique; lookups take the first match.
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, token := range strings.Fields(owner) {
		for _, r := range token {
			b.WriteRune(unicode.ToLower(r))
			break
		}
	}
	return b.String()
}

// FirstName returns the first token of the owner name, used in messages.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return a.Owner
	}
	return fields[0]
}

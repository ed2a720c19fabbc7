package bank

import (
	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a mistyped username may be from an
// existing handle before a suggestion is offered.
const maxSuggestDistance = 2

// Store is the ordered, session-lifetime account list. It is mutated by
// transfers (two appends), loans (one append) and closure (one removal), all
// from a single goroutine.
type Store struct {
	accounts []*Account
}

// NewStore wraps the given accounts in insertion order.
func NewStore(accounts []*Account) *Store {
	return &Store{accounts: accounts}
}

// Len returns the number of open accounts.
func (s *Store) Len() int {
	return len(s.accounts)
}

// Accounts returns a copy of the account list. The records themselves are
// shared; callers mutate them only through Session operations.
func (s *Store) Accounts() []*Account {
	out := make([]*Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// FindByUsername returns the first account whose handle matches, or nil.
// Duplicate handles are possible; first match wins.
func (s *Store) FindByUsername(username string) *Account {
	for _, a := range s.accounts {
		if a.Username == username {
			return a
		}
	}
	return nil
}

// ByID resolves an account id, or nil if the record has been removed.
func (s *Store) ByID(id string) *Account {
	for _, a := range s.accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Remove deletes the account with the given id. It reports whether a record
// was removed; at most one is.
func (s *Store) Remove(id string) bool {
	for i, a := range s.accounts {
		if a.ID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return true
		}
	}
	return false
}

// ClosestUsername returns the existing handle nearest to input, if any is
// within maxSuggestDistance edits. Exact matches return "": there is nothing
// to suggest when the handle exists.
func (s *Store) ClosestUsername(input string) string {
	if input == "" {
		return ""
	}
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, a := range s.accounts {
		d := levenshtein.ComputeDistance(input, a.Username)
		if d == 0 {
			return ""
		}
		if d < bestDist {
			best = a.Username
			bestDist = d
		}
	}
	return best
}

package bank

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tone classifies an outcome message for the status bar.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSuccess
	ToneError
)

// Outcome is the result of a session operation. Expected failures are not
// errors: every operation either performs its effect or reports a message.
// The zero value is a silent no-op.
type Outcome struct {
	OK      bool
	Message string
	Hint    string
	Tone    Tone
}

// Session is the controller over the two-state machine LoggedOut/LoggedIn.
// It holds the current account's id, never a direct index; the record is
// resolved through the store on every use so a removal cannot dangle.
type Session struct {
	store     *Store
	currentID string
	sorted    bool
	currency  string
}

// NewSession starts logged out over the given store. currency is the symbol
// appended to amounts in messages.
func NewSession(store *Store, currency string) *Session {
	return &Session{store: store, currency: currency}
}

// Current resolves the logged-in account, or nil when logged out or after
// the account was closed.
func (s *Session) Current() *Account {
	if s.currentID == "" {
		return nil
	}
	return s.store.ByID(s.currentID)
}

// LoggedIn reports whether a current account resolves.
func (s *Session) LoggedIn() bool {
	return s.Current() != nil
}

// Sorted reports the movement view flag.
func (s *Session) Sorted() bool {
	return s.sorted
}

// Login looks up the first account matching the typed username and compares
// its pin against the numeric parse of the typed pin. Every attempt is
// independent; there is no lockout.
func (s *Session) Login(usernameInput, pinInput string) Outcome {
	acc := s.store.FindByUsername(strings.TrimSpace(usernameInput))
	pin, err := strconv.Atoi(strings.TrimSpace(pinInput))
	if acc == nil || err != nil || acc.PIN != pin {
		s.currentID = ""
		return Outcome{
			Message: "Wrong username or PIN! Please enter correct details",
			Tone:    ToneError,
		}
	}
	s.currentID = acc.ID
	return Outcome{
		OK:      true,
		Message: fmt.Sprintf("Welcome back, %s!", acc.FirstName()),
		Tone:    ToneSuccess,
	}
}

// Transfer moves amount from the current account to the named recipient.
// The gate: amount > 0, recipient exists, amount within current balance, and
// no self-transfer. On success the sender gains -amount and the recipient
// +amount, each as one new movement.
func (s *Session) Transfer(recipientInput, amountInput string) Outcome {
	cur := s.Current()
	if cur == nil {
		return loggedOutOutcome()
	}
	amount := parseAmount(amountInput)
	recipient := s.store.FindByUsername(strings.TrimSpace(recipientInput))

	if amount > 0 && recipient != nil && amount <= Balance(cur.Movements) && recipient.Username != cur.Username {
		cur.Movements = append(cur.Movements, -amount)
		recipient.Movements = append(recipient.Movements, amount)
		return Outcome{
			OK:      true,
			Message: fmt.Sprintf("Transferred %s to %s", s.money(amount), recipient.Username),
			Tone:    ToneSuccess,
		}
	}

	out := Outcome{
		Message: fmt.Sprintf("Sorry %s, transfer is invalid", cur.FirstName()),
		Tone:    ToneError,
	}
	if recipient == nil {
		if near := s.store.ClosestUsername(strings.TrimSpace(recipientInput)); near != "" {
			out.Hint = fmt.Sprintf("did you mean %q?", near)
		}
	}
	return out
}

// RequestLoan grants a loan when the amount is positive and at least one
// existing movement is worth 10% of it. Any single movement counts, deposit
// or not; the heuristic is on recorded history, not on sign.
func (s *Session) RequestLoan(amountInput string) Outcome {
	cur := s.Current()
	if cur == nil {
		return loggedOutOutcome()
	}
	amount := parseAmount(amountInput)

	if amount > 0 && anyMovementAtLeast(cur.Movements, 0.1*amount) {
		cur.Movements = append(cur.Movements, amount)
		return Outcome{
			OK:      true,
			Message: fmt.Sprintf("Loan for %s is granted", s.money(amount)),
			Tone:    ToneSuccess,
		}
	}
	return Outcome{
		Message: fmt.Sprintf("Sorry %s, loan cannot be granted", cur.FirstName()),
		Tone:    ToneError,
	}
}

// CloseAccount removes the current account when the typed confirmation
// matches its username and pin exactly. Failure is a silent no-op; success
// removes the record permanently and leaves the session logged out.
func (s *Session) CloseAccount(usernameInput, pinInput string) Outcome {
	cur := s.Current()
	if cur == nil {
		return loggedOutOutcome()
	}
	pin, err := strconv.Atoi(strings.TrimSpace(pinInput))
	if strings.TrimSpace(usernameInput) != cur.Username || err != nil || pin != cur.PIN {
		return Outcome{}
	}
	s.store.Remove(cur.ID)
	s.currentID = ""
	return Outcome{
		OK:      true,
		Message: fmt.Sprintf("%s user account is closed", cur.FirstName()),
		Tone:    ToneNeutral,
	}
}

// ToggleSort flips the movement view flag and returns the new value. The
// stored movement order is untouched.
func (s *Session) ToggleSort() bool {
	s.sorted = !s.sorted
	return s.sorted
}

func (s *Session) money(amount float64) string {
	return fmt.Sprintf("%.2f%s", amount, s.currency)
}

func loggedOutOutcome() Outcome {
	return Outcome{Message: "No account is logged in", Tone: ToneError}
}

// parseAmount returns NaN for malformed input so every positivity or ceiling
// comparison fails naturally, giving malformed and out-of-range input the
// same denial path.
func parseAmount(input string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func anyMovementAtLeast(movements []float64, threshold float64) bool {
	for _, m := range movements {
		if m >= threshold {
			return true
		}
	}
	return false
}

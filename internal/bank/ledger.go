package bank

import (
	"math"
	"sort"
)

// Ledger reductions. All of these are pure folds over a movement list and are
// recomputed on every render; nothing is cached.

// Balance is the running sum of all movements.
func Balance(movements []float64) float64 {
	sum := 0.0
	for _, m := range movements {
		sum += m
	}
	return sum
}

// Income sums the deposits (movements > 0).
func Income(movements []float64) float64 {
	sum := 0.0
	for _, m := range movements {
		if m > 0 {
			sum += m
		}
	}
	return sum
}

// Expense is the absolute sum of the withdrawals (movements < 0).
func Expense(movements []float64) float64 {
	sum := 0.0
	for _, m := range movements {
		if m < 0 {
			sum += m
		}
	}
	return math.Abs(sum)
}

// QualifyingInterest computes interest per deposit at the given percentage
// rate and sums only those whose individual interest exceeds one unit. The
// one-unit floor is policy, not rounding.
func QualifyingInterest(movements []float64, rate float64) float64 {
	sum := 0.0
	for _, m := range movements {
		if m <= 0 {
			continue
		}
		interest := m * rate / 100
		if interest > 1 {
			sum += interest
		}
	}
	return sum
}

// MovementKind tags a movement by sign.
type MovementKind string

const (
	MovementDeposit    MovementKind = "deposit"
	MovementWithdrawal MovementKind = "withdrawal"
)

// DisplayMovement is one row of the rendered movement list. Position is
// 1-based in display order, so toggling the sort re-pairs labels with rows.
type DisplayMovement struct {
	Position int
	Amount   float64
	Kind     MovementKind
}

// DisplayMovements projects a movement list into display order: ascending
// numeric order when sorted, reverse append order (most recent first)
// otherwise. The stored list is never reordered.
func DisplayMovements(movements []float64, sorted bool) []DisplayMovement {
	ordered := make([]float64, len(movements))
	if sorted {
		copy(ordered, movements)
		sort.Float64s(ordered)
	} else {
		for i, m := range movements {
			ordered[len(movements)-1-i] = m
		}
	}

	rows := make([]DisplayMovement, len(ordered))
	for i, m := range ordered {
		kind := MovementWithdrawal
		if m > 0 {
			kind = MovementDeposit
		}
		rows[i] = DisplayMovement{Position: i + 1, Amount: m, Kind: kind}
	}
	return rows
}

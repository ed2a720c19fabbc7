package bank

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	return NewStore(DemoAccounts())
}

func TestFindByUsername(t *testing.T) {
	s := testStore()
	acc := s.FindByUsername("stw")
	require.NotNil(t, acc)
	require.Equal(t, "Steven Thomas Williams", acc.Owner)
	require.Nil(t, s.FindByUsername("nobody"))
}

func TestFindByUsernameFirstMatchWins(t *testing.T) {
	// Two owners with identical initials share a handle; lookups resolve to
	// the earlier record, never error.
	first := NewAccount("Jane Doe", 1234, 1, []float64{100})
	second := NewAccount("John Dorian", 4321, 1, []float64{200})
	s := NewStore([]*Account{first, second})

	got := s.FindByUsername("jd")
	require.Same(t, first, got)
}

func TestRemove(t *testing.T) {
	s := testStore()
	acc := s.FindByUsername("jd")
	require.NotNil(t, acc)

	before := s.Len()
	require.True(t, s.Remove(acc.ID))
	require.Equal(t, before-1, s.Len())
	require.Nil(t, s.ByID(acc.ID))
	require.Nil(t, s.FindByUsername("jd"))

	// Second removal of the same id is a no-op.
	require.False(t, s.Remove(acc.ID))
	require.Equal(t, before-1, s.Len())
}

func TestClosestUsername(t *testing.T) {
	s := testStore()
	require.Equal(t, "js", s.ClosestUsername("jss"))
	require.Equal(t, "stw", s.ClosestUsername("stww"))
	// Exact handles and empty input produce no suggestion.
	require.Empty(t, s.ClosestUsername("jd"))
	require.Empty(t, s.ClosestUsername(""))
	// Nothing within two edits.
	require.Empty(t, s.ClosestUsername("zzzzzzz"))
}

func TestAccountsReturnsCopyOfList(t *testing.T) {
	s := testStore()
	accounts := s.Accounts()
	accounts[0] = nil
	require.NotNil(t, s.Accounts()[0])
}

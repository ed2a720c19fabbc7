package bank

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveUsername(t *testing.T) {
	cases := []struct {
		owner string
		want  string
	}{
		{"Jonas Schmedtmann", "js"},
		{"Jessica Davis", "jd"},
		{"Steven Thomas Williams", "stw"},
		{"Sarah Smith", "ss"},
		{"  Padded   Name  ", "pn"},
		{"single", "s"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, DeriveUsername(tc.owner), "owner %q", tc.owner)
	}
}

func TestNewAccountDerivesUsernameAndID(t *testing.T) {
	a := NewAccount("Jonas Schmedtmann", 1111, 1.2, []float64{200})
	b := NewAccount("Jonas Schmedtmann", 1111, 1.2, []float64{200})
	require.Equal(t, "js", a.Username)
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
}

func TestFirstName(t *testing.T) {
	require.Equal(t, "Steven", NewAccount("Steven Thomas Williams", 3333, 0.7, nil).FirstName())
	require.Equal(t, "solo", NewAccount("solo", 1, 1, nil).FirstName())
}

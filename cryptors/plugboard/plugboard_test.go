package plugboard

import (
	"testing"

	"github.com/bgallie/enigma/cryptors"
	"github.com/stretchr/testify/require"
)

func TestSwapForward(t *testing.T) {
	pb := New(Pair{'A', 'B'})
	require.Equal(t, 'B', pb.Swap('A'))
}

func TestSwapBackward(t *testing.T) {
	pb := New(Pair{'Y', 'X'})
	require.Equal(t, 'Y', pb.Swap('X'))
}

func TestSwapNoSwap(t *testing.T) {
	pb := New(Pair{'A', 'B'})
	require.Equal(t, 'X', pb.Swap('X'))
}

func TestSymmetry(t *testing.T) {
	pb, err := Parse("AC FG JY LW")
	require.NoError(t, err)
	for _, p := range pb.Pairs() {
		require.Equal(t, p.B, pb.Swap(p.A))
		require.Equal(t, p.A, pb.Swap(p.B))
	}
	for _, c := range "BDEHIKMNOPQRSTUVXZ" {
		require.Equal(t, c, pb.Swap(c))
	}
	for _, c := range cryptors.Alphabet {
		require.Equal(t, c, pb.Swap(pb.Swap(c)))
	}
}

func TestFirstMatchWins(t *testing.T) {
	pb := New(Pair{'A', 'B'}, Pair{'A', 'C'})
	require.Equal(t, 'B', pb.Swap('A'))
	require.Error(t, pb.Validate())
}

func TestNilAndEmpty(t *testing.T) {
	var pb *PlugBoard
	require.Equal(t, 'Q', pb.Swap('Q'))
	require.Equal(t, 0, pb.Len())
	require.NoError(t, pb.Validate())
	require.Equal(t, "", pb.String())

	empty, err := Parse("")
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
	require.Equal(t, 'Q', empty.Swap('Q'))
}

func TestParse(t *testing.T) {
	pb, err := Parse("a:c, F-G;jy")
	require.NoError(t, err)
	require.Equal(t, []Pair{{'A', 'C'}, {'F', 'G'}, {'J', 'Y'}}, pb.Pairs())
	require.Equal(t, "AC FG JY", pb.String())

	var tests = []struct {
		in, want string
	}{
		{"ABC", "exactly two letters"},
		{"AA", "connected to itself"},
		{"AB CA", "already plugged"},
		{"A1", "letters must be A-Z"},
	}
	for _, test := range tests {
		_, err := Parse(test.in)
		require.Error(t, err, test.in)
		require.Contains(t, err.Error(), test.want, test.in)
	}
}

func TestValidateReportsAll(t *testing.T) {
	_, err := Parse("AB AC DD EFG")
	require.Error(t, err)
	msg := err.Error()
	require.Contains(t, msg, "3 errors occurred")
}

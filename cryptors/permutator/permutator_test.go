package permutator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := Parse("EKMFLGDQVZNTOWYHXUSPAIBRCJ")
	require.NoError(t, err)
	require.Equal(t, byte(4), p[0])
	require.Equal(t, "EKMFLGDQVZNTOWYHXUSPAIBRCJ", p.String())

	_, err = Parse("ABC")
	require.Error(t, err)
	_, err = Parse("AACDEFGHIJKLMNOPQRSTUVWXYZ")
	require.Error(t, err)
	_, err = Parse("aBCDEFGHIJKLMNOPQRSTUVWXYZ")
	require.Error(t, err)
}

func TestInverse(t *testing.T) {
	p, err := Parse("BDFHJLCPRTXVZNYEIWGAKMUSQO")
	require.NoError(t, err)
	q := p.Inverse()
	for i := range p {
		require.Equal(t, byte(i), q[p[i]])
		require.Equal(t, byte(i), p[q[i]])
	}
	require.Equal(t, p, q.Inverse().Inverse().Inverse())
	require.Equal(t, p, q.Inverse())
}

func TestInvolution(t *testing.T) {
	b, err := Parse("YRUHQSLDPXNGOKMIEBFZCWVJAT")
	require.NoError(t, err)
	require.True(t, b.IsInvolution())
	require.Empty(t, b.FixedPoints())
	require.Equal(t, []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2}, b.CycleLengths())

	r, err := Parse("EKMFLGDQVZNTOWYHXUSPAIBRCJ")
	require.NoError(t, err)
	require.False(t, r.IsInvolution())

	require.True(t, Identity().IsInvolution())
	require.Len(t, Identity().FixedPoints(), 26)
}

func TestCycles(t *testing.T) {
	p, err := Parse("EKMFLGDQVZNTOWYHXUSPAIBRCJ")
	require.NoError(t, err)
	require.Equal(t, "(AELTPHQXRU)(BKNW)(CMOY)(DFG)(IV)(JZ)(S)", p.CycleString())
	require.Equal(t, []int{10, 4, 4, 3, 2, 2, 1}, p.CycleLengths())

	total := 0
	for _, c := range p.Cycles() {
		total += len(c)
	}
	require.Equal(t, 26, total)
}

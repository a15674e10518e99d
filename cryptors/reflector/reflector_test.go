package reflector

import (
	"testing"

	"github.com/bgallie/enigma/cryptors"
	"github.com/stretchr/testify/require"
)

func TestKnownAreInvolutions(t *testing.T) {
	for _, k := range Reflectors {
		r, err := Known(k)
		require.NoError(t, err)
		require.True(t, r.Wiring().IsInvolution(), k.String())
		require.Empty(t, r.Wiring().FixedPoints(), k.String())
		for _, c := range cryptors.Alphabet {
			require.Equal(t, c, r.Reflect(r.Reflect(c)))
			require.NotEqual(t, c, r.Reflect(c))
		}
	}
}

func TestReflect(t *testing.T) {
	b := MustKnown(B)
	require.Equal(t, 'Y', b.Reflect('A'))
	require.Equal(t, 'A', b.Reflect('Y'))
	require.Equal(t, '*', b.Reflect('*'))
	require.Equal(t, "B YRUHQSLDPXNGOKMIEBFZCWVJAT", b.String())

	c := MustKnown(C)
	require.Equal(t, 'F', c.Reflect('A'))
}

func TestParseReflector(t *testing.T) {
	k, err := ParseReflector("c")
	require.NoError(t, err)
	require.Equal(t, C, k)
	_, err = ParseReflector("Z")
	require.Error(t, err)
	_, err = Known(Kind(9))
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	r, err := New("swap", "BADCFEHGJILKNMPORQTSVUXWZY")
	require.NoError(t, err)
	require.Equal(t, "swap", r.Name())
	require.Equal(t, 'B', r.Reflect('A'))

	_, err = New("bad", "ABC")
	require.Error(t, err)
}

package wiring

import (
	"testing"

	"github.com/bgallie/enigma/cryptors"
	"github.com/stretchr/testify/require"
)

func TestKnownTablesInvert(t *testing.T) {
	for _, r := range Rotors {
		tbl, err := Known(r)
		require.NoError(t, err, r.String())
		for i := 0; i < cryptors.AlphabetSize; i++ {
			f := tbl.Wire(i, cryptors.Forward)
			require.Equal(t, i, tbl.Wire(f, cryptors.Backward), "%s contact %d", r, i)
		}
	}
}

func TestKnownNotches(t *testing.T) {
	var tests = []struct {
		r       Rotor
		notches []int
	}{
		{I, []int{16}},
		{II, []int{4}},
		{III, []int{21}},
		{IV, []int{9}},
		{V, []int{25}},
		{VI, []int{12, 25}},
		{VII, []int{12, 25}},
		{VIII, []int{12, 25}},
		{Identity, []int{0}},
	}
	for _, test := range tests {
		tbl := MustKnown(test.r)
		require.Equal(t, test.notches, tbl.Notches(), test.r.String())
		for _, n := range test.notches {
			require.True(t, tbl.IsNotch(n))
		}
		require.False(t, tbl.IsNotch(1))
	}
}

func TestIdentity(t *testing.T) {
	tbl := MustKnown(Identity)
	for i := 0; i < cryptors.AlphabetSize; i++ {
		require.Equal(t, i, tbl.Wire(i, cryptors.Forward))
		require.Equal(t, i, tbl.Wire(i, cryptors.Backward))
	}
}

func TestNew(t *testing.T) {
	_, err := New("X", cryptors.Alphabet)
	require.Error(t, err)
	_, err = New("X", cryptors.Alphabet, 1, 2, 3)
	require.Error(t, err)
	_, err = New("X", cryptors.Alphabet, 26)
	require.Error(t, err)
	_, err = New("X", "ABCDEFGHIJKLMNOPQRSTUVWXYY", 0)
	require.Error(t, err)

	tbl, err := New("custom", "BCDEFGHIJKLMNOPQRSTUVWXYZA", 3, 7)
	require.NoError(t, err)
	require.Equal(t, "custom", tbl.Name())
	require.Equal(t, 1, tbl.Wire(0, cryptors.Forward))
	require.Equal(t, 25, tbl.Wire(0, cryptors.Backward))
	require.Equal(t, "custom BCDEFGHIJKLMNOPQRSTUVWXYZA notch DH", tbl.String())

	n := tbl.Notches()
	n[0] = 9
	require.Equal(t, []int{3, 7}, tbl.Notches())
}

func TestParseRotor(t *testing.T) {
	r, err := ParseRotor("viii")
	require.NoError(t, err)
	require.Equal(t, VIII, r)
	r, err = ParseRotor(" Identity ")
	require.NoError(t, err)
	require.Equal(t, Identity, r)
	_, err = ParseRotor("IX")
	require.Error(t, err)

	_, err = Known(Rotor(42))
	require.Error(t, err)
	require.Equal(t, "Rotor(42)", Rotor(42).String())
}

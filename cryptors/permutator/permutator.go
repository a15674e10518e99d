// permutator project permutator.go
package permutator

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/bitops"
)

// Permutation maps contact i to contact p[i].
type Permutation [cryptors.AlphabetSize]byte

// Identity returns the permutation that maps every contact to itself.
func Identity() Permutation {
	var p Permutation
	for i := range p {
		p[i] = byte(i)
	}
	return p
}

// Parse builds a permutation from a 26 letter encoding where the letter at
// position i is the image of contact i.  The encoding must use every letter
// exactly once.
func Parse(encoding string) (Permutation, error) {
	var p Permutation
	if len(encoding) != cryptors.AlphabetSize {
		return p, fmt.Errorf("wiring %q has %d letters, want %d", encoding, len(encoding), cryptors.AlphabetSize)
	}

	var used bitops.Set
	for i, c := range []byte(encoding) {
		n, err := cryptors.ToIndex(rune(c))
		if err != nil {
			return p, fmt.Errorf("wiring %q: %w", encoding, err)
		}
		if used.GetBit(uint(n)) {
			return p, fmt.Errorf("wiring %q: letter %c is used more than once", encoding, c)
		}
		used.SetBit(uint(n))
		p[i] = byte(n)
	}
	if used != bitops.Full(cryptors.AlphabetSize) {
		return p, fmt.Errorf("wiring %q does not use every letter", encoding)
	}

	return p, nil
}

// Inverse returns q such that q[p[i]] == i for every contact i.
func (p Permutation) Inverse() Permutation {
	var q Permutation
	for i, v := range p {
		q[v] = byte(i)
	}
	return q
}

// IsInvolution reports whether applying p twice gives the identity.
func (p Permutation) IsInvolution() bool {
	var pp Permutation
	for i, v := range p {
		pp[i] = p[v]
	}
	return pp == Identity()
}

// FixedPoints returns the contacts that p maps to themselves.
func (p Permutation) FixedPoints() []byte {
	var fp []byte
	for i, v := range p {
		if int(v) == i {
			fp = append(fp, byte(i))
		}
	}
	return fp
}

// Cycles decomposes p into disjoint cycles.  Each cycle starts with its
// smallest contact and the cycles are ordered by their first contact.
func (p Permutation) Cycles() [][]byte {
	var seen bitops.Set
	var cycles [][]byte

	for start := range p {
		if seen.GetBit(uint(start)) {
			continue
		}
		var cycle []byte
		for c := start; !seen.GetBit(uint(c)); c = int(p[c]) {
			seen.SetBit(uint(c))
			cycle = append(cycle, byte(c))
		}
		cycles = append(cycles, cycle)
	}

	return cycles
}

// CycleLengths returns the lengths of the cycles of p, longest first.
func (p Permutation) CycleLengths() []int {
	cycles := p.Cycles()
	lengths := make([]int, len(cycles))
	for i, c := range cycles {
		lengths[i] = len(c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))
	return lengths
}

// CycleString renders the cycles of p in the usual (AELTPHQXRU)(BKNW)... form.
func (p Permutation) CycleString() string {
	var output bytes.Buffer
	for _, cycle := range p.Cycles() {
		output.WriteByte('(')
		for _, c := range cycle {
			output.WriteRune(cryptors.ToLetter(int(c)))
		}
		output.WriteByte(')')
	}
	return output.String()
}

// String returns the 26 letter encoding of p.
func (p Permutation) String() string {
	var output bytes.Buffer
	for _, v := range p {
		output.WriteRune(cryptors.ToLetter(int(v)))
	}
	return output.String()
}

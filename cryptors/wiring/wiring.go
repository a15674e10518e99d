// wiring
package wiring

import (
	"fmt"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/permutator"
)

// Rotor designates one of the historical rotor wirings.
type Rotor int

const (
	I Rotor = iota
	II
	III
	IV
	V
	VI
	VII
	VIII
	Identity
)

type known struct {
	name     string
	encoding string
	notches  string
}

var knownRotors = [...]known{
	I:        {"I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", "Q"},
	II:       {"II", "AJDKSIRUXBLHWTMCQGZNPYFVOE", "E"},
	III:      {"III", "BDFHJLCPRTXVZNYEIWGAKMUSQO", "V"},
	IV:       {"IV", "ESOVPZJAYQUIRHXLNFTGKDCMWB", "J"},
	V:        {"V", "VZBRGITYUPSDNHLXAWMJQOFECK", "Z"},
	VI:       {"VI", "JPGVOUMFYQBENHZRDKASXLICTW", "MZ"},
	VII:      {"VII", "NZJHGRCXMYSWBOUFAIVLPEKQDT", "MZ"},
	VIII:     {"VIII", "FKQHTLXOCBJSPDZRAMEWNIUYGV", "MZ"},
	Identity: {"Identity", cryptors.Alphabet, "A"},
}

// Rotors lists every known designator in order.
var Rotors = []Rotor{I, II, III, IV, V, VI, VII, VIII, Identity}

func (r Rotor) String() string {
	if r < 0 || int(r) >= len(knownRotors) {
		return fmt.Sprintf("Rotor(%d)", int(r))
	}
	return knownRotors[r].name
}

// ParseRotor resolves a rotor name such as "III" or "identity".
func ParseRotor(name string) (Rotor, error) {
	for i, k := range knownRotors {
		if strings.EqualFold(k.name, strings.TrimSpace(name)) {
			return Rotor(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rotor %q", name)
}

// Table is the immutable wiring of one physical rotor type.  A Table may be
// shared by any number of rotors.
type Table struct {
	name     string
	notches  []int
	forward  permutator.Permutation
	backward permutator.Permutation
}

// New builds a table from a 26 letter encoding and one or two notch
// positions.
func New(name, encoding string, notches ...int) (*Table, error) {
	if len(notches) < 1 || len(notches) > 2 {
		return nil, fmt.Errorf("rotor %s: must have one or two notches, got %d", name, len(notches))
	}
	for _, n := range notches {
		if n < 0 || n >= cryptors.AlphabetSize {
			return nil, fmt.Errorf("rotor %s: notch %d out of range", name, n)
		}
	}
	fwd, err := permutator.Parse(encoding)
	if err != nil {
		return nil, fmt.Errorf("rotor %s: %w", name, err)
	}

	t := Table{
		name:     name,
		notches:  append([]int(nil), notches...),
		forward:  fwd,
		backward: fwd.Inverse(),
	}
	return &t, nil
}

// Known returns the table of a historical rotor.
func Known(r Rotor) (*Table, error) {
	if r < 0 || int(r) >= len(knownRotors) {
		return nil, fmt.Errorf("unknown rotor %d", int(r))
	}
	k := knownRotors[r]
	notches := make([]int, len(k.notches))
	for i, c := range k.notches {
		notches[i] = int(c - 'A')
	}
	return New(k.name, k.encoding, notches...)
}

// MustKnown is like Known but panics on an unknown designator.
func MustKnown(r Rotor) *Table {
	t, err := Known(r)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Name() string {
	return t.name
}

// Notches returns a copy of the turnover positions.
func (t *Table) Notches() []int {
	return append([]int(nil), t.notches...)
}

// IsNotch reports whether position is one of the turnover positions.
func (t *Table) IsNotch(position int) bool {
	for _, n := range t.notches {
		if n == position {
			return true
		}
	}
	return false
}

// Wire returns the contact that entry is wired to in the given direction.
func (t *Table) Wire(entry int, dir cryptors.Direction) int {
	if dir == cryptors.Backward {
		return int(t.backward[entry])
	}
	return int(t.forward[entry])
}

func (t *Table) Forward() permutator.Permutation {
	return t.forward
}

func (t *Table) Backward() permutator.Permutation {
	return t.backward
}

func (t *Table) String() string {
	notches := make([]byte, len(t.notches))
	for i, n := range t.notches {
		notches[i] = byte(cryptors.ToLetter(n))
	}
	return fmt.Sprintf("%s %s notch %s", t.name, t.forward, notches)
}

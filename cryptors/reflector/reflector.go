// reflector
package reflector

import (
	"fmt"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/permutator"
)

// Kind designates one of the historical reflectors.
type Kind int

const (
	A Kind = iota
	B
	C
)

var knownReflectors = [...]struct {
	name     string
	encoding string
}{
	A: {"A", "EJMZALYXVBWFCRQUONTSPIKHGD"},
	B: {"B", "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
	C: {"C", "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
}

// Reflectors lists every known designator in order.
var Reflectors = []Kind{A, B, C}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(knownReflectors) {
		return fmt.Sprintf("Reflector(%d)", int(k))
	}
	return knownReflectors[k].name
}

// ParseReflector resolves a reflector name such as "B".
func ParseReflector(name string) (Kind, error) {
	for i, k := range knownReflectors {
		if strings.EqualFold(k.name, strings.TrimSpace(name)) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown reflector %q", name)
}

// Reflector is a fixed substitution applied once per character.  The wiring
// is assumed to be an involution and is not checked.
type Reflector struct {
	name   string
	wiring permutator.Permutation
}

// New builds a reflector from a 26 letter encoding.
func New(name, encoding string) (*Reflector, error) {
	p, err := permutator.Parse(encoding)
	if err != nil {
		return nil, fmt.Errorf("reflector %s: %w", name, err)
	}
	return &Reflector{name: name, wiring: p}, nil
}

// Known returns one of the historical reflectors.
func Known(k Kind) (*Reflector, error) {
	if k < 0 || int(k) >= len(knownReflectors) {
		return nil, fmt.Errorf("unknown reflector %d", int(k))
	}
	return New(knownReflectors[k].name, knownReflectors[k].encoding)
}

// MustKnown is like Known but panics on an unknown designator.
func MustKnown(k Kind) *Reflector {
	r, err := Known(k)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Reflector) Name() string {
	return r.name
}

func (r *Reflector) Wiring() permutator.Permutation {
	return r.wiring
}

// Reflect substitutes an upper case letter.  Any other rune is returned
// unchanged; the rotors reject it before it can reach the reflector.
func (r *Reflector) Reflect(c rune) rune {
	n, err := cryptors.ToIndex(c)
	if err != nil {
		return c
	}
	return cryptors.ToLetter(int(r.wiring[n]))
}

func (r *Reflector) String() string {
	return fmt.Sprintf("%s %s", r.name, r.wiring)
}

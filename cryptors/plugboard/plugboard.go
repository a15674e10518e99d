// plugboard
package plugboard

import (
	"fmt"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/bitops"
	"github.com/hashicorp/go-multierror"
)

// Pair is one cable connecting two sockets.
type Pair struct {
	A, B rune
}

func (p Pair) String() string {
	return string([]rune{p.A, p.B})
}

// PlugBoard swaps the letters of each configured pair.  The zero value and
// a nil *PlugBoard are both the identity.
type PlugBoard struct {
	pairs []Pair
}

// New returns a plugboard with the given pairs.  A letter should appear in
// at most one pair; New does not check this, use Validate or Parse.
func New(pairs ...Pair) *PlugBoard {
	return &PlugBoard{pairs: append([]Pair(nil), pairs...)}
}

// Parse reads pairs written as "AC FG JY" or "A:C,F:G,J-Y" and validates
// them.
func Parse(s string) (*PlugBoard, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';' || r == '\t'
	})

	var result *multierror.Error
	pairs := make([]Pair, 0, len(fields))
	for _, f := range fields {
		f = strings.ToUpper(strings.NewReplacer(":", "", "-", "", "=", "").Replace(f))
		if len(f) != 2 {
			result = multierror.Append(result, fmt.Errorf("plug %q: must connect exactly two letters", f))
			continue
		}
		pairs = append(pairs, Pair{rune(f[0]), rune(f[1])})
	}

	pb := New(pairs...)
	if err := pb.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return pb, nil
}

// Validate checks that every pair joins two different letters and that no
// letter is used twice.
func (pb *PlugBoard) Validate() error {
	if pb == nil {
		return nil
	}

	var result *multierror.Error
	var used bitops.Set
	for _, p := range pb.pairs {
		if !cryptors.IsLetter(p.A) || !cryptors.IsLetter(p.B) {
			result = multierror.Append(result, fmt.Errorf("plug %s: letters must be A-Z", p))
			continue
		}
		if p.A == p.B {
			result = multierror.Append(result, fmt.Errorf("plug %s: a letter cannot be connected to itself", p))
			continue
		}
		for _, c := range []rune{p.A, p.B} {
			if used.GetBit(uint(c - 'A')) {
				result = multierror.Append(result, fmt.Errorf("plug %s: letter %c is already plugged", p, c))
			}
			used.SetBit(uint(c - 'A'))
		}
	}

	return result.ErrorOrNil()
}

// Swap returns the partner of c, or c itself if it is not plugged.  Only the
// first matching pair is applied.
func (pb *PlugBoard) Swap(c rune) rune {
	if pb == nil {
		return c
	}
	for _, p := range pb.pairs {
		switch c {
		case p.A:
			return p.B
		case p.B:
			return p.A
		}
	}
	return c
}

// Pairs returns a copy of the configured pairs.
func (pb *PlugBoard) Pairs() []Pair {
	if pb == nil {
		return nil
	}
	return append([]Pair(nil), pb.pairs...)
}

func (pb *PlugBoard) Len() int {
	if pb == nil {
		return 0
	}
	return len(pb.pairs)
}

func (pb *PlugBoard) String() string {
	pairs := pb.Pairs()
	s := make([]string, len(pairs))
	for i, p := range pairs {
		s[i] = p.String()
	}
	return strings.Join(s, " ")
}

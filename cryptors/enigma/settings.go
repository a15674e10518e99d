package enigma

import (
	"fmt"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/plugboard"
	"github.com/bgallie/enigma/cryptors/reflector"
	"github.com/bgallie/enigma/cryptors/rotor"
	"github.com/bgallie/enigma/cryptors/wiring"
	"github.com/hashicorp/go-multierror"
)

// Settings is the daily key of a machine as an operator would write it down.
// Rotors are listed left to right, e.g. "I II III".  Rings and Positions are
// either three letters ("AAA") or three numbers 1-26 ("01 01 01").
// Plugboard pairs are written "AC FG JY".
type Settings struct {
	Rotors    string `mapstructure:"rotors"`
	Reflector string `mapstructure:"reflector"`
	Rings     string `mapstructure:"rings"`
	Positions string `mapstructure:"positions"`
	Plugboard string `mapstructure:"plugboard"`
}

// DefaultSettings returns rotors I II III with reflector B, all rings and
// positions at A and no plugboard cables.
func DefaultSettings() Settings {
	return Settings{
		Rotors:    "I II III",
		Reflector: "B",
		Rings:     "AAA",
		Positions: "AAA",
	}
}

type resolved struct {
	rotors    [3]wiring.Rotor
	reflector reflector.Kind
	rings     [3]int
	positions [3]int
	plugboard *plugboard.PlugBoard
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '-' || r == '\t'
	})
}

// ParseTriple reads three ring settings or rotor positions.
func ParseTriple(s string) ([3]int, error) {
	var t [3]int
	fields := splitList(s)
	if len(fields) == 1 && len(fields[0]) == 3 {
		fields = []string{fields[0][:1], fields[0][1:2], fields[0][2:]}
	}
	if len(fields) != 3 {
		return t, fmt.Errorf("%q: want three values, one per rotor", s)
	}
	for i, f := range fields {
		v, err := cryptors.ParseSetting(f)
		if err != nil {
			return t, err
		}
		t[i] = v
	}
	return t, nil
}

func (s Settings) resolve() (resolved, error) {
	var res resolved
	var result *multierror.Error

	names := splitList(s.Rotors)
	if len(names) != 3 {
		result = multierror.Append(result, fmt.Errorf("rotors %q: want three rotors, left to right", s.Rotors))
	} else {
		for i, n := range names {
			r, err := wiring.ParseRotor(n)
			if err != nil {
				result = multierror.Append(result, err)
				continue
			}
			res.rotors[i] = r
		}
	}

	var err error
	if res.reflector, err = reflector.ParseReflector(s.Reflector); err != nil {
		result = multierror.Append(result, err)
	}
	if res.rings, err = ParseTriple(s.Rings); err != nil {
		result = multierror.Append(result, fmt.Errorf("rings %w", err))
	}
	if res.positions, err = ParseTriple(s.Positions); err != nil {
		result = multierror.Append(result, fmt.Errorf("positions %w", err))
	}
	if res.plugboard, err = plugboard.Parse(s.Plugboard); err != nil {
		result = multierror.Append(result, err)
	}

	return res, result.ErrorOrNil()
}

// Validate reports every problem with the settings at once.
func (s Settings) Validate() error {
	_, err := s.resolve()
	return err
}

// Build returns a machine configured with s.
func (s Settings) Build() (*Machine, error) {
	res, err := s.resolve()
	if err != nil {
		return nil, err
	}

	var rotors [3]*rotor.Rotor
	for i := range rotors {
		w, err := wiring.Known(res.rotors[i])
		if err != nil {
			return nil, err
		}
		rotors[i] = rotor.New(w, res.rings[i], res.positions[i])
	}
	refl, err := reflector.Known(res.reflector)
	if err != nil {
		return nil, err
	}

	return New(rotors[0], rotors[1], rotors[2], refl, res.plugboard), nil
}

// Settings returns the settings the machine was built with, with the current
// rotor positions.
func (m *Machine) Settings() Settings {
	rings := []rune{
		cryptors.ToLetter(m.left.RingSetting()),
		cryptors.ToLetter(m.middle.RingSetting()),
		cryptors.ToLetter(m.right.RingSetting()),
	}
	return Settings{
		Rotors:    strings.Join([]string{m.left.Wiring().Name(), m.middle.Wiring().Name(), m.right.Wiring().Name()}, " "),
		Reflector: m.reflector.Name(),
		Rings:     string(rings),
		Positions: m.RotorPositions(),
		Plugboard: m.plugboard.String(),
	}
}

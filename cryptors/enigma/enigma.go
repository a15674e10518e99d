// Package enigma wires three rotors, a reflector and a plugboard into a
// working Enigma machine.
//
// A Machine is not safe for concurrent use.  Every character mutates the
// rotor positions, so each ciphering session needs its own Machine.
package enigma

import (
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/plugboard"
	"github.com/bgallie/enigma/cryptors/reflector"
	"github.com/bgallie/enigma/cryptors/rotor"
	"github.com/bgallie/enigma/log"
)

type Machine struct {
	left, middle, right *rotor.Rotor
	reflector           *reflector.Reflector
	plugboard           *plugboard.PlugBoard
	log                 log.Logger
}

// New assembles a machine.  left is the slowest rotor and right the fastest.
// pb may be nil for a machine without plugboard cables.
func New(left, middle, right *rotor.Rotor, r *reflector.Reflector, pb *plugboard.PlugBoard) *Machine {
	return &Machine{
		left:      left,
		middle:    middle,
		right:     right,
		reflector: r,
		plugboard: pb,
		log:       log.Nop(),
	}
}

// SetLogger makes the machine trace every character through l at debug
// level.
func (m *Machine) SetLogger(l log.Logger) {
	if l == nil {
		l = log.Nop()
	}
	m.log = l
}

func (m *Machine) Left() *rotor.Rotor {
	return m.left
}

func (m *Machine) Middle() *rotor.Rotor {
	return m.middle
}

func (m *Machine) Right() *rotor.Rotor {
	return m.right
}

func (m *Machine) Reflector() *reflector.Reflector {
	return m.reflector
}

func (m *Machine) PlugBoard() *plugboard.PlugBoard {
	return m.plugboard
}

// step advances the rotors before a key closes the circuit.  Both notch
// checks see the positions from before this step.
func (m *Machine) step() {
	if m.middle.IsAtNotch() {
		m.middle.Rotate()
		m.left.Rotate()
	} else if m.right.IsAtNotch() {
		m.middle.Rotate()
	}
	m.right.Rotate()
}

// RotorPositions returns the letters in the three rotor windows, left to
// right.
func (m *Machine) RotorPositions() string {
	return string([]rune{m.left.Position(), m.middle.Position(), m.right.Position()})
}

// SetRotorPositions moves the rotors to the positions in p, left to right, and
// makes them the new starting positions.
func (m *Machine) SetRotorPositions(p [3]int) {
	m.left.SetPosition(p[0])
	m.middle.SetPosition(p[1])
	m.right.SetPosition(p[2])
}

// Reset returns every rotor to its starting position.
func (m *Machine) Reset() {
	m.left.Reset()
	m.middle.Reset()
	m.right.Reset()
}

// EncryptChar steps the rotors and enciphers one letter.  The rotors step
// even when c is rejected.
func (m *Machine) EncryptChar(c rune) (rune, error) {
	m.log.Debugw("keyboard", "input", string(c))
	m.step()
	m.log.Debugw("rotors", "position", m.RotorPositions(),
		"index", [...]int{m.left.Index(), m.middle.Index(), m.right.Index()})

	var err error
	result := m.plugboard.Swap(c)
	m.log.Debugw("plugboard", "output", string(result))

	for i, r := range [...]*rotor.Rotor{m.right, m.middle, m.left} {
		if result, err = r.Encipher(result, cryptors.Forward); err != nil {
			m.log.Debugw("rejected", "input", string(c), "err", err)
			return cryptors.Sentinel, err
		}
		m.log.Debugw("wheel", "wheel", 3-i, "direction", cryptors.Forward, "output", string(result))
	}

	result = m.reflector.Reflect(result)
	m.log.Debugw("reflector", "output", string(result))

	for i, r := range [...]*rotor.Rotor{m.left, m.middle, m.right} {
		if result, err = r.Encipher(result, cryptors.Backward); err != nil {
			return cryptors.Sentinel, err
		}
		m.log.Debugw("wheel", "wheel", i+1, "direction", cryptors.Backward, "output", string(result))
	}

	result = m.plugboard.Swap(result)
	m.log.Debugw("lampboard", "output", string(result))
	return result, nil
}

// EncryptString enciphers every character of s in order.  A character the
// machine rejects is replaced by cryptors.Sentinel and processing continues,
// so a '*' in the result cannot be told apart from a rejected input without
// checking the input.
func (m *Machine) EncryptString(s string) string {
	var output strings.Builder
	output.Grow(len(s))
	for _, c := range s {
		e, err := m.EncryptChar(c)
		if err != nil {
			e = cryptors.Sentinel
		}
		output.WriteRune(e)
	}
	return output.String()
}

func (m *Machine) String() string {
	return strings.Join([]string{
		m.left.String(),
		m.middle.String(),
		m.right.String(),
		"reflector " + m.reflector.Name(),
		"plugboard " + m.plugboard.String(),
	}, "\n")
}

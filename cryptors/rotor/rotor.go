// rotor
package rotor

import (
	"bytes"
	"fmt"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/wiring"
)

type Rotor struct {
	wiring      *wiring.Table
	ringSetting int
	start       int
	position    int
}

// New returns a rotor using the wiring w with the given ring setting and
// starting position, both zero based.
func New(w *wiring.Table, ringSetting, position int) *Rotor {
	var r Rotor
	r.Update(w, ringSetting, position)
	return &r
}

// Update replaces the wiring and settings of the rotor, as when the operator
// takes it out and reinserts it.
func (r *Rotor) Update(w *wiring.Table, ringSetting, position int) {
	r.wiring = w
	r.ringSetting = cryptors.Mod(ringSetting)
	r.start = cryptors.Mod(position)
	r.position = r.start
}

// Reset returns the rotor to its starting position.
func (r *Rotor) Reset() {
	r.position = r.start
}

// SetPosition moves the rotor to p and makes p the new starting position.
func (r *Rotor) SetPosition(p int) {
	r.start = cryptors.Mod(p)
	r.position = r.start
}

func (r *Rotor) Wiring() *wiring.Table {
	return r.wiring
}

func (r *Rotor) RingSetting() int {
	return r.ringSetting
}

// Index returns the current position as a number in [0, 26).
func (r *Rotor) Index() int {
	return r.position
}

// Position returns the letter showing in the rotor window.
func (r *Rotor) Position() rune {
	return cryptors.ToLetter(r.Index())
}

func (r *Rotor) IsAtNotch() bool {
	return r.wiring.IsNotch(r.position)
}

func (r *Rotor) Rotate() {
	r.position = (r.position + 1) % cryptors.AlphabetSize
}

// Encipher passes c through the rotor in direction dir.
func (r *Rotor) Encipher(c rune, dir cryptors.Direction) (rune, error) {
	n, err := cryptors.ToIndex(c)
	if err != nil {
		return c, err
	}

	shift := cryptors.Mod(r.position - r.ringSetting)
	wired := r.wiring.Wire((n+shift)%cryptors.AlphabetSize, dir)
	return cryptors.ToLetter(wired - shift), nil
}

func (r *Rotor) String() string {
	var output bytes.Buffer
	output.WriteString(fmt.Sprintf("rotor %s ring %c position %c", r.wiring.Name(),
		cryptors.ToLetter(r.ringSetting), r.Position()))
	if r.IsAtNotch() {
		output.WriteString(" (at notch)")
	}
	return output.String()
}

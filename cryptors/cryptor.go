// cryptor
package cryptors

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// AlphabetSize is the number of contacts on every rotor, reflector and
	// the plugboard.
	AlphabetSize = 26
	// Sentinel is written in place of a character the machine could not
	// encipher.
	Sentinel = '*'
	// Alphabet is the keyboard of the machine in contact order.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Direction selects which table of a rotor the signal passes through.
type Direction int

const (
	// Forward is the path from the entry wheel towards the reflector.
	Forward Direction = iota
	// Backward is the return path from the reflector to the lampboard.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ErrInvalidCharacter matches any InvalidCharacterError with errors.Is.
var ErrInvalidCharacter = errors.New("invalid character")

// InvalidCharacterError is returned when a character outside A-Z is offered
// to a rotor.
type InvalidCharacterError struct {
	Char rune
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("cannot process character %q", e.Char)
}

func (e InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// IsLetter reports whether r is one of the 26 upper case letters.
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// ToIndex converts an upper case letter to its zero based contact number.
func ToIndex(r rune) (int, error) {
	if !IsLetter(r) {
		return 0, InvalidCharacterError{Char: r}
	}
	return int(r - 'A'), nil
}

// ToLetter converts a contact number to its letter. n is reduced modulo 26.
func ToLetter(n int) rune {
	return rune('A' + Mod(n))
}

// Mod returns n modulo 26 in the range [0, 26).
func Mod(n int) int {
	n %= AlphabetSize
	if n < 0 {
		n += AlphabetSize
	}
	return n
}

// ParseSetting converts a ring setting or rotor position given either as a
// letter (A-Z, case insensitive) or as a number 1-26 to its zero based value.
func ParseSetting(s string) (int, error) {
	switch {
	case len(s) == 1 && IsLetter(rune(s[0])):
		return int(s[0] - 'A'), nil
	case len(s) == 1 && s[0] >= 'a' && s[0] <= 'z':
		return int(s[0] - 'a'), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid setting %q: must be a letter A-Z or a number 1-26", s)
	}
	if n < 1 || n > AlphabetSize {
		return 0, fmt.Errorf("invalid setting %q: number out of range 1-26", s)
	}
	return n - 1, nil
}

// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

// Package main - enigma is a simulation of the three rotor Enigma cipher
// machine, with the historical rotors I-VIII, reflectors A, B and C, and
// the plugboard.
package main

import "github.com/bgallie/enigma/cmd"

func main() {
	cmd.Execute()
}

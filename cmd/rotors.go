/*
Copyright © 2021 Billy G. Allie <bill.allie@defiant.mug.org>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/reflector"
	"github.com/bgallie/enigma/cryptors/wiring"
	"github.com/spf13/cobra"
)

var showCycles bool

// rotorsCmd represents the rotors command
var rotorsCmd = &cobra.Command{
	Use:   "rotors",
	Short: "List the known rotors and reflectors",
	Long: `List the wiring and turnover notches of the known rotors and the wiring of
the known reflectors.  With --cycles the cycle structure of each wiring is shown.`,
	Run: func(cmd *cobra.Command, args []string) {
		listRotors(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(rotorsCmd)
	rotorsCmd.Flags().BoolVar(&showCycles, "cycles", false, "show the cycle structure of each wiring")
}

func listRotors(w io.Writer) {
	fmt.Fprintln(w, "Rotors:")
	for _, r := range wiring.Rotors {
		tbl := wiring.MustKnown(r)
		var notches []rune
		for _, n := range tbl.Notches() {
			notches = append(notches, cryptors.ToLetter(n))
		}
		fmt.Fprintf(w, "  %-8s %s  notch %s\n", tbl.Name(), tbl.Forward(), string(notches))
		if showCycles {
			fmt.Fprintf(w, "  %-8s %s %v\n", "", tbl.Forward().CycleString(), tbl.Forward().CycleLengths())
		}
	}
	fmt.Fprintln(w, "Reflectors:")
	for _, k := range reflector.Reflectors {
		refl := reflector.MustKnown(k)
		fmt.Fprintf(w, "  %-8s %s\n", refl.Name(), refl.Wiring())
		if showCycles {
			fmt.Fprintf(w, "  %-8s %s\n", "", refl.Wiring().CycleString())
		}
	}
}

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

	"github.com/bgallie/enigma/cryptors/enigma"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var writeSettings bool

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or save the machine settings",
	Long: `Show the machine settings that encrypt and decrypt would use, after the
config file, the ENIGMA_* environment variables and the command line flags are
applied.  With --write the settings are saved to the config file.`,
	Run: func(cmd *cobra.Command, args []string) {
		initEngine()
		s := enigmaMachine.Settings()
		printSettings(cmd.OutOrStdout(), s)
		if writeSettings {
			cobra.CheckErr(saveSettings(s))
			fmt.Fprintln(cmd.ErrOrStderr(), "Settings written to", viper.ConfigFileUsed())
		}
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.Flags().BoolVarP(&writeSettings, "write", "w", false, "write the settings to the config file")
}

func printSettings(w io.Writer, s enigma.Settings) {
	fmt.Fprintf(w, "rotors:    %s\n", s.Rotors)
	fmt.Fprintf(w, "reflector: %s\n", s.Reflector)
	fmt.Fprintf(w, "rings:     %s\n", s.Rings)
	fmt.Fprintf(w, "positions: %s\n", s.Positions)
	fmt.Fprintf(w, "plugboard: %s\n", s.Plugboard)
}

// saveSettings stores s in the config file in use, or in the default config
// file if none was read.
func saveSettings(s enigma.Settings) error {
	viper.Set("rotors", s.Rotors)
	viper.Set("reflector", s.Reflector)
	viper.Set("rings", s.Rings)
	viper.Set("positions", s.Positions)
	viper.Set("plugboard", s.Plugboard)
	if viper.ConfigFileUsed() == "" {
		viper.SetConfigFile(defaultCfgFile)
	}
	return viper.WriteConfig()
}

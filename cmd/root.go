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
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bgallie/enigma/cryptors/enigma"
	"github.com/bgallie/enigma/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	cfgFile        string
	defaultCfgFile string
	inputFileName  string
	outputFileName string
	rawInput       bool
	logLevel       string
	logJSON        bool
	enigmaMachine  *enigma.Machine
	wg             sync.WaitGroup
	GitCommit      string = "not set"
	GitBranch      string = "not set"
	GitState       string = "not set"
	GitSummary     string = "not set"
	BuildDate      string = "not set"
	Version        string = "dev"
)

const (
	enigmaConfigName = ".enigma"
	enigmaSuffix     = ".enigma"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "An Enigma cipher machine",
	Long: `enigma is a program that encrypts/decrypts text using a simulation of the
three rotor Enigma machine, including the double stepping of the middle rotor.
Encryption and decryption are the same operation: decrypting with the same
settings and starting positions reproduces the plaintext.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	defaults := enigma.DefaultSettings()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.enigma.yaml)")
	pf.StringVarP(&inputFileName, "inputFile", "i", "-", "Name of the plaintext file to encrypt/decrypt.")
	pf.StringVarP(&outputFileName, "outputFile", "o", "", "Name of the file containing the encrypted/decrypted text.")
	pf.String("rotors", defaults.Rotors, "the rotors to use, left to right (I-VIII or Identity)")
	pf.String("reflector", defaults.Reflector, "the reflector to use (A, B or C)")
	pf.String("rings", defaults.Rings, "the ring settings, left to right (eg. AAA or \"01 01 01\")")
	pf.String("positions", defaults.Positions, "the starting rotor positions, left to right (eg. AAA)")
	pf.String("plugboard", defaults.Plugboard, "the plugboard pairs (eg. \"AC FG JY LW\")")
	pf.BoolVarP(&rawInput, "raw", "r", false, `pass every character to the machine.
Characters other than A-Z are replaced by '*' instead of being dropped.`)
	pf.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.BoolVar(&logJSON, "log-json", false, "log in JSON format")
	for _, key := range []string{"rotors", "reflector", "rings", "positions", "plugboard"} {
		cobra.CheckErr(viper.BindPFlag(key, pf.Lookup(key)))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	defaultCfgFile = filepath.Join(home, enigmaConfigName+".yaml")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name ".enigma" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(enigmaConfigName)
	}

	viper.SetEnvPrefix("ENIGMA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	lvl, err := log.ParseLevel(logLevel)
	cobra.CheckErr(err)
	log.ConfigureDefaultLogger(os.Stderr, lvl, logJSON)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.DefaultLogger().Infow("using config file", "file", viper.ConfigFileUsed())
	}
}

// currentSettings collects the machine settings from the flags, environment
// and config file, in that order of precedence.
func currentSettings() enigma.Settings {
	var s enigma.Settings
	cobra.CheckErr(viper.Unmarshal(&s))
	return s
}

func initEngine() {
	s := currentSettings()
	m, err := s.Build()
	cobra.CheckErr(err)
	m.SetLogger(log.DefaultLogger().Named("machine"))
	log.DefaultLogger().Debugw("machine ready", "rotors", s.Rotors, "reflector", s.Reflector,
		"rings", s.Rings, "positions", m.RotorPositions())
	enigmaMachine = m
}

/*
	getInputAndOutputFiles will return the input and output files to use while
	encrypting/decrypting data.  If input and/or output files names were given,
	then those files will be opened.  Otherwise stdin and stdout are used.
*/
func getInputAndOutputFiles(encrypt bool) (*os.File, *os.File) {
	var fin *os.File
	var err error

	if len(inputFileName) > 0 && inputFileName != "-" {
		fin, err = os.Open(inputFileName)
		cobra.CheckErr(err)
	} else {
		fin = os.Stdin
	}

	var fout *os.File

	if len(outputFileName) > 0 {
		if outputFileName == "-" {
			fout = os.Stdout
		} else {
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		}
	} else if len(inputFileName) == 0 || inputFileName == "-" {
		fout = os.Stdout
	} else if encrypt {
		outputFileName = inputFileName + enigmaSuffix
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else {
		if strings.HasSuffix(inputFileName, enigmaSuffix) {
			outputFileName = strings.TrimSuffix(inputFileName, enigmaSuffix)
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		} else {
			fout = os.Stdout
		}
	}
	log.DefaultLogger().Debugw("files", "input", fin.Name(), "output", fout.Name())
	return fin, fout
}

// getInputReader returns fin, or, when fin is an interactive terminal, the
// message typed by the operator.  The message is read without echo so it
// does not remain on the screen next to its ciphertext.
func getInputReader(fin *os.File, prompt string) io.Reader {
	if fin != os.Stdin || !term.IsTerminal(int(fin.Fd())) {
		return fin
	}
	fmt.Fprintf(os.Stderr, "%s: ", prompt)
	msg, err := term.ReadPassword(int(fin.Fd()))
	cobra.CheckErr(err)
	fmt.Fprintln(os.Stderr, "")
	return strings.NewReader(string(msg))
}

// checkError checks for error that are not io.EOF and io.ErrUnexpectedEOF and logs them.
func checkError(e error) {
	if e != io.EOF && e != io.ErrUnexpectedEOF {
		cobra.CheckErr(e)
	}
}

// cipherHelper runs the enigma machine over rdr in its own goroutine and
// returns the enciphered stream.
func cipherHelper(rdr io.Reader) *io.PipeReader {
	rRdr, rWrtr := io.Pipe()
	eRdr := enigma.NewReader(enigmaMachine, rdr)
	eRdr.LettersOnly = !rawInput
	wg.Add(1)

	go func() {
		defer wg.Done()
		_, err := io.Copy(rWrtr, eRdr)
		log.DefaultLogger().Debugw("machine finished", "characters", eRdr.Count(),
			"positions", enigmaMachine.RotorPositions())
		rWrtr.CloseWithError(err)
	}()

	return rRdr
}

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
	"bufio"
	"fmt"
	"io"

	"github.com/bgallie/enigma/log"
	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
)

var (
	useASCII85  bool
	usePem      bool
	compression bool
)

const (
	pemBlockType = "ENIGMA MESSAGE"
	headerPrefix = "+ENIGMA"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt plaintext using the Enigma machine",
	Long: `Encrypt plaintext using the Enigma machine configured by the rotors,
reflector, rings, positions and plugboard settings.`,
	Run: func(cmd *cobra.Command, args []string) {
		encrypt()
	},
}

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:        "encode",
	Short:      "Encode plaintext using the Enigma machine",
	Long:       `[DEPRECATED] Encode plaintext using the Enigma machine.`,
	Deprecated: "use \"encrypt\" instead.",
	Run: func(cmd *cobra.Command, args []string) {
		encrypt()
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(encodeCmd)
	for _, c := range []*cobra.Command{encryptCmd, encodeCmd} {
		c.Flags().BoolVarP(&useASCII85, "useASCII85", "a", false, "use ASCII85 encoding")
		c.Flags().BoolVarP(&usePem, "usePem", "p", false, "use PEM encoding.")
		c.Flags().BoolVarP(&compression, "compress", "c", false, `compress the ciphertext using flate.
Implies ASCII85 encoding unless PEM encoding is selected.`)
	}
}

// messageHeader is the first line of an ASCII85 encoded message.  It carries
// the starting rotor positions so the receiver can set up the machine.
type messageHeader struct {
	encoding    string
	compression bool
	start       string
}

func (h messageHeader) String() string {
	return fmt.Sprintf("%s|%s|%v|%s\n", headerPrefix, h.encoding, h.compression, h.start)
}

func encrypt() {
	initEngine()
	fin, fout := getInputAndOutputFiles(true)
	defer fout.Close()
	start := enigmaMachine.RotorPositions()
	if compression && !usePem {
		useASCII85 = true
	}

	var encIn io.Reader = cipherHelper(getInputReader(fin, "Enter the plaintext"))
	if compression {
		encIn = flate.ToFlate(encIn)
	}

	var err error
	switch {
	case usePem:
		var blck pem.Block
		blck.Type = pemBlockType
		blck.Headers = make(map[string]string)
		blck.Headers["Start"] = start
		blck.Headers["Compression"] = fmt.Sprintf("%v", compression)
		if len(inputFileName) > 0 && inputFileName != "-" {
			blck.Headers["FileName"] = inputFileName
		}
		_, err = io.Copy(fout, pem.ToPem(bufio.NewReader(encIn), blck))
	case useASCII85:
		hdr := messageHeader{encoding: "a", compression: compression, start: start}
		_, err = fout.WriteString(hdr.String())
		checkError(err)
		_, err = io.Copy(fout, lines.SplitToLines(ascii85.ToASCII85(encIn)))
	default:
		_, err = io.Copy(fout, lines.SplitToLines(encIn))
	}
	checkError(err)
	wg.Wait()
	log.DefaultLogger().Infow("encrypted", "start", start, "end", enigmaMachine.RotorPositions())
}

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
	"os"
	"strings"

	"github.com/bgallie/enigma/cryptors/enigma"
	"github.com/bgallie/enigma/log"
	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt an Enigma encrypted message.",
	Long: `Decrypt a message encrypted by the Enigma machine.  Plain text, ASCII85 and
PEM encoded messages are recognised automatically.  The starting positions
recorded in an ASCII85 or PEM message are used unless the positions are set
with --positions, ENIGMA_POSITIONS or the config file.`,
	Run: func(cmd *cobra.Command, args []string) {
		decrypt()
	},
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:        "decode",
	Short:      "Decode an Enigma encoded message.",
	Long:       `[DEPRECATED] Decode a message encoded by the Enigma machine.`,
	Deprecated: "use \"decrypt\" instead.",
	Run: func(cmd *cobra.Command, args []string) {
		decrypt()
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(decodeCmd)
}

// parseHeader reads the header line written by encrypt for ASCII85 messages.
func parseHeader(line string) (messageHeader, error) {
	var hdr messageHeader
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "|")
	if len(fields) != 4 || fields[0] != headerPrefix {
		return hdr, fmt.Errorf("malformed message header: %q", line)
	}
	if fields[1] != "a" {
		return hdr, fmt.Errorf("unknown message encoding: %q", fields[1])
	}
	hdr.encoding = fields[1]
	hdr.compression = fields[2] == "true"
	hdr.start = fields[3]
	return hdr, nil
}

// openMessage detects how the message read from bRdr is encoded and returns
// a reader for the bare ciphertext and the starting positions it records.
func openMessage(bRdr *bufio.Reader) (io.Reader, string) {
	b, err := bRdr.Peek(len(headerPrefix))
	checkError(err)
	switch {
	case strings.HasPrefix(string(b), "-----"):
		pRdr, blck := pem.FromPem(bRdr)
		if blck.Type != pemBlockType {
			log.DefaultLogger().Warnw("unexpected PEM block", "type", blck.Type)
		}
		compression = blck.Headers["Compression"] == "true"
		var aRdr io.Reader = pRdr
		if compression {
			aRdr = flate.FromFlate(aRdr)
		}
		return aRdr, blck.Headers["Start"]
	case string(b) == headerPrefix:
		line, err := bRdr.ReadString('\n')
		checkError(err)
		hdr, err := parseHeader(line)
		cobra.CheckErr(err)
		compression = hdr.compression
		var aRdr io.Reader = ascii85.FromASCII85(lines.CombineLines(bRdr))
		if compression {
			aRdr = flate.FromFlate(aRdr)
		}
		return aRdr, hdr.start
	default:
		return lines.CombineLines(bRdr), ""
	}
}

func decrypt() {
	initEngine()
	fin, fout := getInputAndOutputFiles(false)
	defer fout.Close()
	bRdr := bufio.NewReader(getInputReader(fin, "Enter the ciphertext"))
	src, start := openMessage(bRdr)

	if len(start) > 0 {
		if viper.IsSet("positions") {
			fmt.Fprintf(os.Stderr, "Ignoring the message start positions %s - using %s.\n", start, enigmaMachine.RotorPositions())
		} else {
			p, err := enigma.ParseTriple(start)
			cobra.CheckErr(err)
			enigmaMachine.SetRotorPositions(p)
			log.DefaultLogger().Debugw("positions from message", "start", start)
		}
	}

	_, err := io.Copy(fout, lines.SplitToLines(cipherHelper(src)))
	checkError(err)
	wg.Wait() // Wait for the machine to finish it's clean up.
	log.DefaultLogger().Infow("decrypted", "end", enigmaMachine.RotorPositions())
}

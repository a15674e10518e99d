package enigma

import (
	"bufio"
	"io"
	"unicode"

	"github.com/bgallie/enigma/cryptors"
)

// Reader enciphers the runes read from an underlying reader.
type Reader struct {
	m   *Machine
	src *bufio.Reader
	// LettersOnly folds lower case letters to upper case and drops every
	// other rune before it reaches the machine, as the keyboard of the real
	// machine would.  When false every rune is offered to the machine and
	// rejected runes come out as cryptors.Sentinel.
	LettersOnly bool
	count       int64
	err         error
}

// NewReader returns a Reader enciphering r with m.
func NewReader(m *Machine, r io.Reader) *Reader {
	return &Reader{m: m, src: bufio.NewReader(r), LettersOnly: true}
}

// Count returns the number of characters enciphered so far.
func (r *Reader) Count() int64 {
	return r.count
}

// Read enciphers up to len(p) characters into p.  A read error that arrives
// after some characters were enciphered is returned by the next call.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		err := r.err
		r.err = nil
		return 0, err
	}
	n := 0
	for n < len(p) {
		c, _, err := r.src.ReadRune()
		if err != nil {
			if n > 0 {
				r.err = err
				return n, nil
			}
			return 0, err
		}
		if r.LettersOnly {
			c = unicode.ToUpper(c)
			if !cryptors.IsLetter(c) {
				continue
			}
		}
		e, err := r.m.EncryptChar(c)
		if err != nil {
			e = cryptors.Sentinel
		}
		p[n] = byte(e)
		n++
		r.count++
	}
	return n, nil
}

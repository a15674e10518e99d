// bitops project bitops.go
package bitops

import "math/bits"

// Set is a set of contact numbers in [0, 32), one bit per contact.
type Set uint32

func (s *Set) SetBit(bit uint) *Set {
	*s |= 1 << (bit & 31)
	return s
}

func (s Set) GetBit(bit uint) bool {
	return s&(1<<(bit&31)) != 0
}

// Len returns the number of bits set.
func (s Set) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Full returns a set with the first n bits set.
func Full(n uint) Set {
	if n >= 32 {
		return ^Set(0)
	}
	return Set(1)<<n - 1
}

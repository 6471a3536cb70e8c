// Package lowbits tags the low bit of an address-width word. Pointers to
// anything 2-byte aligned or wider have a zero low bit, which leaves that
// bit free to mark small unsigned integers stored in the rest of the
// word. The classic tagged-pointer layout for interpreters whose cells
// are word aligned.
package lowbits

import "github.com/rawbytedev/stuffbits"

const tagBit = 1

// Strategy stores pointers as their plain address (low bit clear) and
// uint others shifted up one with the low bit set.
//
// Supported domain: addresses of at least 2-byte aligned allocations,
// and uints that fit one bit short of the word.
type Strategy struct{}

var _ stuffbits.Strategy[stuffbits.WordPtr, uint] = Strategy{}

// StuffPtr stores addr as-is. Panics on a misaligned address, since its
// set low bit would make the word read back as an other value.
func (Strategy) StuffPtr(addr uintptr) stuffbits.WordPtr {
	if addr&tagBit != 0 {
		panic("lowbits: address is not 2-byte aligned")
	}
	return stuffbits.WordPtr(addr)
}

// StuffOther stores other shifted behind the tag bit. Panics when the
// value needs the word's top bit.
func (Strategy) StuffOther(other uint) stuffbits.WordPtr {
	if other > ^uint(0)>>1 {
		panic("lowbits: value does not fit a tagged word")
	}
	return stuffbits.WordPtr(other)<<1 | tagBit
}

// Extract switches on the tag bit.
func (Strategy) Extract(word stuffbits.WordPtr) stuffbits.Unstuffed[uint] {
	if word&tagBit != 0 {
		return stuffbits.Other(uint(word >> 1))
	}
	return stuffbits.Ptr[uint](uintptr(word))
}

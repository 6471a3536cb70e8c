// Package nanbox stuffs pointers into the unused NaN space of 64-bit
// floats. Every word is either a float64 or a pointer hidden behind a
// reserved quiet-NaN mask, so a stuffed word doubles as a valid double
// whenever it is not a pointer.
//
// Layout: pointer words are ptrMask | address, with the address in the
// low 50 bits. The mask sets the sign bit, the full exponent, the quiet
// bit and one extra payload bit, a pattern no float operation produces,
// so hardware NaNs and infinities stay on the float side.
package nanbox

import (
	"math"

	"github.com/rawbytedev/stuffbits"
)

const (
	// ptrMask marks a word as a pointer: sign + exponent + quiet bit +
	// payload bit 50.
	ptrMask = 0xFFFC_0000_0000_0000

	// payloadMask covers the 50 address bits a pointer word can carry.
	payloadMask = ^uint64(ptrMask)

	// canonicalNaN replaces the few float bit patterns that would
	// collide with ptrMask. All of them are NaNs already.
	canonicalNaN = 0x7FF8_0000_0000_0000
)

// Strategy is the NaN-boxing layout over Word64 with float64 others.
//
// Supported domain: every address with its upper 14 bits clear (all user
// addresses on the supported 64-bit platforms), and every float64 except
// the negative quiet NaNs whose bits land inside ptrMask, which stuff to
// the canonical quiet NaN instead.
type Strategy struct{}

var _ stuffbits.Strategy[stuffbits.Word64, float64] = Strategy{}

// StuffPtr packs addr under the pointer mask. Panics if addr has bits
// above the 50-bit payload, since truncating would corrupt the address.
func (Strategy) StuffPtr(addr uintptr) stuffbits.Word64 {
	if uint64(addr)&^payloadMask != 0 {
		panic("nanbox: address does not fit the NaN payload")
	}
	return stuffbits.Word64(ptrMask | uint64(addr))
}

// StuffOther packs a float bit-exactly, except for the colliding NaN
// patterns noted on Strategy.
func (Strategy) StuffOther(other float64) stuffbits.Word64 {
	bits := math.Float64bits(other)
	if bits&ptrMask == ptrMask {
		bits = canonicalNaN
	}
	return stuffbits.Word64(bits)
}

// Extract reads a pointer when the mask matches and a float otherwise.
func (Strategy) Extract(word stuffbits.Word64) stuffbits.Unstuffed[float64] {
	if uint64(word)&ptrMask == ptrMask {
		return stuffbits.Ptr[float64](uintptr(uint64(word) & payloadMask))
	}
	return stuffbits.Other(math.Float64frombits(uint64(word)))
}

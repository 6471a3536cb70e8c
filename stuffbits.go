// Package stuffbits packs either a typed pointer or an arbitrary
// fixed-size other value into a single fixed-width word, with the bit
// layout supplied by a pluggable Strategy. It is aimed at interpreter and
// VM authors who want tagged-pointer or NaN-boxing representations
// without re-deriving the pointer/integer conversion rules each time.
//
// The package manages bits, not memory: a StuffedPtr is a non-owning
// pointer, it never keeps the pointee alive and never frees it. Shipped
// layouts live in pkg/nanbox and pkg/lowbits; the core imposes none.
package stuffbits

import (
	"fmt"
	"unsafe"

	"github.com/rawbytedev/stuffbits/internal/provenance"
)

// StuffedPtr holds either a pointer to T or an other value O, stuffed
// into a single word B by the strategy S. The only field is the word;
// T, O and S exist purely so reads come back correctly typed.
//
// A StuffedPtr is an immutable value: copy it, compare it with ==, read
// it from any number of goroutines. Dropping one has no effect on the
// pointee, same as dropping a raw pointer.
type StuffedPtr[T any, B Backend[B], O any, S Strategy[B, O]] struct {
	word B
}

// NewPtr stuffs p's address. The address is exposed through the
// provenance boundary so Ptr can later reconstruct it.
func NewPtr[T any, B Backend[B], O any, S Strategy[B, O]](p *T) StuffedPtr[T, B, O, S] {
	var s S
	addr := provenance.Expose(unsafe.Pointer(p))
	return StuffedPtr[T, B, O, S]{word: s.StuffPtr(addr)}
}

// NewOther stuffs an other value.
func NewOther[T any, B Backend[B], O any, S Strategy[B, O]](other O) StuffedPtr[T, B, O, S] {
	var s S
	return StuffedPtr[T, B, O, S]{word: s.StuffOther(other)}
}

// FromWord wraps a raw word, the inverse of Word. The word is trusted to
// be one the strategy produced; nothing about it can be validated here.
func FromWord[T any, B Backend[B], O any, S Strategy[B, O]](word B) StuffedPtr[T, B, O, S] {
	return StuffedPtr[T, B, O, S]{word: word}
}

// Ptr extracts the stuffed pointer, if the word holds one. The pointee is
// never dereferenced; the returned pointer is only valid if the caller
// kept the allocation alive since NewPtr.
func (p StuffedPtr[T, B, O, S]) Ptr() (*T, bool) {
	var s S
	addr, ok := s.Extract(p.word).Ptr()
	if !ok {
		return nil, false
	}
	return (*T)(provenance.Reconstruct(addr)), true
}

// Other extracts the stuffed other value, if the word holds one. The
// value is copied out of the word; nothing is transferred or freed.
func (p StuffedPtr[T, B, O, S]) Other() (O, bool) {
	var s S
	return s.Extract(p.word).Other()
}

// Unstuff runs the strategy's Extract and returns the raw two-case
// result, for callers that want the address rather than a pointer.
func (p StuffedPtr[T, B, O, S]) Unstuff() Unstuffed[O] {
	var s S
	return s.Extract(p.word)
}

// Word returns the underlying storage word without decoding it.
func (p StuffedPtr[T, B, O, S]) Word() B { return p.word }

func (p StuffedPtr[T, B, O, S]) String() string {
	u := p.Unstuff()
	if addr, ok := u.Ptr(); ok {
		return fmt.Sprintf("StuffedPtr(0x%x)", uint64(addr))
	}
	other, _ := u.Other()
	return fmt.Sprintf("StuffedPtr(%v)", other)
}

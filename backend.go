package stuffbits

// Backend is the constraint satisfied by the fixed-width words a stuffed
// pointer can live in. A word is an opaque bit container: it has no idea
// which bits mean "pointer" and which mean "other", it only needs to be
// wide enough to hold an address.
//
// Conversions here never panic. Addr reports false instead of truncating;
// deciding what overflow means (and failing loudly on it) is the job of
// the Strategy doing the conversion.
type Backend[B any] interface {
	comparable

	// FromAddr widens addr into a word. Lossless for every provided
	// width, since all of them are at least address-sized.
	FromAddr(addr uintptr) B

	// Addr narrows the word back to an address. Reports false when the
	// held value does not fit a uintptr.
	Addr() (uintptr, bool)
}

// WordPtr is an address-width storage word.
type WordPtr uintptr

func (WordPtr) FromAddr(addr uintptr) WordPtr { return WordPtr(addr) }

func (w WordPtr) Addr() (uintptr, bool) { return uintptr(w), true }

// Word64 is a 64-bit storage word.
type Word64 uint64

func (Word64) FromAddr(addr uintptr) Word64 { return Word64(addr) }

func (w Word64) Addr() (uintptr, bool) {
	a := uintptr(w)
	if uint64(a) != uint64(w) { // 32-bit platforms
		return 0, false
	}
	return a, true
}

// Word128 is a 128-bit storage word, held as two halves. Useful for
// strategies that want a full address next to out-of-band bits.
type Word128 struct {
	Hi, Lo uint64
}

func (Word128) FromAddr(addr uintptr) Word128 { return Word128{Lo: uint64(addr)} }

func (w Word128) Addr() (uintptr, bool) {
	if w.Hi != 0 || uint64(uintptr(w.Lo)) != w.Lo {
		return 0, false
	}
	return uintptr(w.Lo), true
}

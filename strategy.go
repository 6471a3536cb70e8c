package stuffbits

// Strategy describes how pointer addresses and other values are stuffed
// into a storage word. This is what a user of the package implements to
// bring their own bit layout; the container never inspects bits itself.
//
// Implementations must be stateless zero-size struct types, since the
// container reaches them through their zero value. All three functions
// must be pure and deterministic, and Extract must be total: every bit
// pattern B can hold maps to exactly one case. The package cannot detect
// a layout whose pointer and other ranges overlap; keeping them disjoint
// is the strategy author's contract, checked by their own property tests.
//
// Round-trip contract: for every supported address a,
// Extract(StuffPtr(a)) yields Ptr(a); for every supported other value o,
// Extract(StuffOther(o)) yields Other(o) bit-exactly. An address that
// does not fit the strategy's layout should make StuffPtr panic rather
// than truncate, since a truncated address reconstructs a wrong pointer.
type Strategy[B Backend[B], O any] interface {
	// StuffPtr packs a pointer address into a word.
	StuffPtr(addr uintptr) B

	// StuffOther packs an other value into a word. Must be infallible
	// over the strategy's documented other domain.
	StuffOther(other O) B

	// Extract unpacks a word into exactly one of the two cases.
	Extract(word B) Unstuffed[O]
}

// Unit is the other type of strategies that have no other values to
// stuff, such as PtrOnly.
type Unit struct{}

// PtrOnly is the trivial strategy: every word is a pointer, stored as
// its plain address. Stuffing the Unit other produces the zero word,
// which Extract still reads as a (null) pointer.
type PtrOnly[B Backend[B]] struct{}

func (PtrOnly[B]) StuffPtr(addr uintptr) B {
	var zero B
	return zero.FromAddr(addr)
}

func (PtrOnly[B]) StuffOther(Unit) B {
	var zero B
	return zero
}

func (PtrOnly[B]) Extract(word B) Unstuffed[Unit] {
	addr, ok := word.Addr()
	if !ok {
		// unreachable for words produced by StuffPtr
		panic("stuffbits: word value too big for an address")
	}
	return Ptr[Unit](addr)
}

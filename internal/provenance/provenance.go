// Package provenance confines the pointer/integer conversions behind
// pointer stuffing to exactly two paired functions. No other file in the
// module converts between unsafe.Pointer and uintptr.
//
// Go has no strict-provenance model to enforce the pairing, so the
// contract is documentation-level: an address handed to Reconstruct must
// have come from Expose, and the allocation it points into must still be
// reachable through some live pointer at that moment. The package never
// keeps the pointee alive itself; a stuffed pointer is non-owning, so the
// address inside a word is invisible to the garbage collector exactly
// like any other integer.
package provenance

import "unsafe"

// Expose returns p's address. The exposure is what makes a later
// Reconstruct of the same address valid.
func Expose(p unsafe.Pointer) uintptr {
	return uintptr(p)
}

// Reconstruct turns an address previously returned by Expose back into a
// pointer. Callers must not pass addresses from any other source.
func Reconstruct(addr uintptr) unsafe.Pointer {
	// uintptr -> Pointer is outside the unsafe.Pointer safe patterns;
	// see the package contract.
	return unsafe.Pointer(addr)
}

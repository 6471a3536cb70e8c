package stuffbits

// Unstuffed is the result of extracting a storage word: either a pointer
// address or the strategy's other value, never both. It is produced fresh
// on every extract and compares with == when O does.
type Unstuffed[O any] struct {
	addr  uintptr
	other O
	isPtr bool
}

// Ptr returns an Unstuffed holding a pointer address.
func Ptr[O any](addr uintptr) Unstuffed[O] {
	return Unstuffed[O]{addr: addr, isPtr: true}
}

// Other returns an Unstuffed holding an other value.
func Other[O any](other O) Unstuffed[O] {
	return Unstuffed[O]{other: other}
}

// IsPtr reports whether u holds a pointer address.
func (u Unstuffed[O]) IsPtr() bool { return u.isPtr }

// Ptr returns the held address, if u holds one.
func (u Unstuffed[O]) Ptr() (uintptr, bool) {
	return u.addr, u.isPtr
}

// Other returns the held other value, if u holds one.
func (u Unstuffed[O]) Other() (O, bool) {
	if u.isPtr {
		var zero O
		return zero, false
	}
	return u.other, true
}

package stuffbits

import (
	"runtime"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mark is a zero-size other value for the test strategies below.
type mark struct{}

// maxOther64 parks the only other value at the all-ones pattern and
// treats every remaining word as a plain address.
type maxOther64 struct{}

func (maxOther64) StuffPtr(addr uintptr) Word64 { return Word64(addr) }
func (maxOther64) StuffOther(mark) Word64       { return ^Word64(0) }
func (maxOther64) Extract(w Word64) Unstuffed[mark] {
	if w == ^Word64(0) {
		return Other(mark{})
	}
	addr, ok := w.Addr()
	if !ok {
		panic("address does not fit")
	}
	return Ptr[mark](addr)
}

type maxOtherPtr struct{}

func (maxOtherPtr) StuffPtr(addr uintptr) WordPtr { return WordPtr(addr) }
func (maxOtherPtr) StuffOther(mark) WordPtr       { return ^WordPtr(0) }
func (maxOtherPtr) Extract(w WordPtr) Unstuffed[mark] {
	if w == ^WordPtr(0) {
		return Other(mark{})
	}
	return Ptr[mark](uintptr(w))
}

type maxOther128 struct{}

func (maxOther128) StuffPtr(addr uintptr) Word128 { return Word128{}.FromAddr(addr) }
func (maxOther128) StuffOther(mark) Word128       { return Word128{Hi: ^uint64(0), Lo: ^uint64(0)} }
func (maxOther128) Extract(w Word128) Unstuffed[mark] {
	if w.Hi == ^uint64(0) && w.Lo == ^uint64(0) {
		return Other(mark{})
	}
	addr, ok := w.Addr()
	if !ok {
		panic("address does not fit")
	}
	return Ptr[mark](addr)
}

func TestPtrRoundTrip64(t *testing.T) {
	x := new(int)
	*x = 42
	sp := NewPtr[int, Word64, mark, maxOther64](x)
	got, ok := sp.Ptr()
	require.True(t, ok)
	require.Same(t, x, got)
	require.Equal(t, 42, *got)
	_, ok = sp.Other()
	require.False(t, ok)
	runtime.KeepAlive(x)
}

func TestPtrRoundTripWordPtr(t *testing.T) {
	x := new(string)
	*x = "hello"
	sp := NewPtr[string, WordPtr, mark, maxOtherPtr](x)
	got, ok := sp.Ptr()
	require.True(t, ok)
	require.Same(t, x, got)
	runtime.KeepAlive(x)
}

func TestPtrRoundTrip128(t *testing.T) {
	x := new(uint32)
	*x = 7
	sp := NewPtr[uint32, Word128, mark, maxOther128](x)
	got, ok := sp.Ptr()
	require.True(t, ok)
	require.Same(t, x, got)
	require.Zero(t, sp.Word().Hi)
	runtime.KeepAlive(x)
}

func TestOtherRoundTrip(t *testing.T) {
	sp := NewOther[int, Word64, mark, maxOther64](mark{})
	_, ok := sp.Other()
	require.True(t, ok)
	_, ok = sp.Ptr()
	require.False(t, ok)
	require.Equal(t, ^Word64(0), sp.Word())
}

func TestMutualExclusivity(t *testing.T) {
	condition := func(w uint64) bool {
		sp := FromWord[int, Word64, mark, maxOther64](Word64(w))
		_, pok := sp.Ptr()
		_, ook := sp.Other()
		return pok != ook
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestAddrRoundTripProperty(t *testing.T) {
	var s maxOther64
	condition := func(a uint64) bool {
		addr := uintptr(a)
		if Word64(addr) == ^Word64(0) {
			return true // reserved for the other value
		}
		got, ok := s.Extract(s.StuffPtr(addr)).Ptr()
		return ok && got == addr
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestPtrOnly(t *testing.T) {
	x := new(int)
	sp := NewPtr[int, WordPtr, Unit, PtrOnly[WordPtr]](x)
	got, ok := sp.Ptr()
	require.True(t, ok)
	require.Same(t, x, got)
	runtime.KeepAlive(x)

	// the zero word still reads as a (null) pointer
	zp := NewOther[int, WordPtr, Unit, PtrOnly[WordPtr]](Unit{})
	p, ok := zp.Ptr()
	require.True(t, ok)
	require.Nil(t, p)
	_, ok = zp.Other()
	require.False(t, ok)
}

func TestWidthBoundary(t *testing.T) {
	// the all-ones address survives a 64-bit word exactly
	var s PtrOnly[Word64]
	addr, ok := s.Extract(s.StuffPtr(^uintptr(0))).Ptr()
	require.True(t, ok)
	require.Equal(t, ^uintptr(0), addr)

	// a 128-bit word with high bits set cannot narrow to an address
	_, ok = Word128{Hi: 1}.Addr()
	require.False(t, ok)
}

func TestContainerEquality(t *testing.T) {
	x := new(int)
	a := NewPtr[int, Word64, mark, maxOther64](x)
	b := NewPtr[int, Word64, mark, maxOther64](x)
	assert.True(t, a == b)
	assert.True(t, a.Word() == b.Word())

	c := a // copying never touches the word
	assert.Equal(t, a.Word(), c.Word())
	runtime.KeepAlive(x)
}

func TestUnstuffed(t *testing.T) {
	p := Ptr[mark](0x1000)
	require.True(t, p.IsPtr())
	addr, ok := p.Ptr()
	require.True(t, ok)
	require.Equal(t, uintptr(0x1000), addr)
	_, ok = p.Other()
	require.False(t, ok)

	o := Other(mark{})
	require.False(t, o.IsPtr())
	_, ok = o.Ptr()
	require.False(t, ok)
	require.True(t, o == Other(mark{}))
}

func TestString(t *testing.T) {
	sp := FromWord[int, Word64, mark, maxOther64](Word64(0x1000))
	assert.Equal(t, "StuffedPtr(0x1000)", sp.String())
	assert.Equal(t, "StuffedPtr({})", NewOther[int, Word64, mark, maxOther64](mark{}).String())
}

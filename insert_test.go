package dlist

import (
	"testing"

	"github.com/nivlib/dlist/assert"
)

func Test_InsertAt_Spliced(t *testing.T) {
	l := intList(0, 1, 2, 3)
	assert.NoError(t, l.InsertAt(2, encodeInt(9)))
	assertInts(t, l, 0, 1, 9, 2, 3)
}

func Test_InsertAt_ClampsToEnds(t *testing.T) {
	l := intList(1, 2, 3)

	// index 0 is insert-at-head
	assert.NoError(t, l.InsertAt(0, encodeInt(0)))
	assertInts(t, l, 0, 1, 2, 3)

	// negative indices clamp to the head as well
	assert.NoError(t, l.InsertAt(-7, encodeInt(-1)))
	assertInts(t, l, -1, 0, 1, 2, 3)

	// indices at or past the length are insert-at-tail
	assert.NoError(t, l.InsertAt(l.Len(), encodeInt(4)))
	assertInts(t, l, -1, 0, 1, 2, 3, 4)

	assert.NoError(t, l.InsertAt(100, encodeInt(5)))
	assertInts(t, l, -1, 0, 1, 2, 3, 4, 5)
}

func Test_Insert_NilData(t *testing.T) {
	l := intList()
	assert.Error(t, l.InsertTail(nil), ErrNilArgument)
	assert.Error(t, l.InsertHead(nil), ErrNilArgument)
	assert.Error(t, l.InsertAt(0, nil), ErrNilArgument)
}

func Test_Insert_RejectsShortElement(t *testing.T) {
	l := intList()
	assert.Error(t, l.InsertTail([]byte{1, 2}), ErrInvalidOperation)
	assert.Equal(t, l.Len(), 0)
}

func Test_Insert_PointerModeSharesBacking(t *testing.T) {
	l := intList()
	buf := encodeInt(42)
	assert.NoError(t, l.InsertTailPtr(buf))

	copy(buf, encodeInt(7))
	got, err := l.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, decodeInt(got), 7)
	assert.Equal(t, l.head.next.mode, ModePointer)
}

func Test_Insert_ValueModeCopies(t *testing.T) {
	l := intList()
	buf := encodeInt(42)
	assert.NoError(t, l.InsertTail(buf))

	copy(buf, encodeInt(7))
	got, err := l.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, decodeInt(got), 42)
}

func Test_Insert_UsesCopyCallback(t *testing.T) {
	calls := 0
	l, err := New(Configure(4).Copy(func(dst, src []byte) {
		calls++
		copy(dst, src)
	}))
	assert.NoError(t, err)

	assert.NoError(t, l.InsertTail(encodeInt(1)))
	assert.NoError(t, l.InsertHead(encodeInt(2)))
	assert.Equal(t, calls, 2)

	// pointer mode takes the slice as-is, no copy
	assert.NoError(t, l.InsertTailPtr(encodeInt(3)))
	assert.Equal(t, calls, 2)
}

func Test_Capacity_RejectWhenFull(t *testing.T) {
	l, err := New(Configure(4).MaxSize(2, RejectWhenFull))
	assert.NoError(t, err)

	assert.NoError(t, l.InsertTail(encodeInt(1)))
	assert.NoError(t, l.InsertTail(encodeInt(2)))
	assert.Error(t, l.InsertTail(encodeInt(3)), ErrListFull)
	assertInts(t, l, 1, 2)
}

func Test_Capacity_EvictOldest(t *testing.T) {
	l, err := New(Configure(4).MaxSize(3, EvictOldest))
	assert.NoError(t, err)

	// inserting maxSize+m elements keeps exactly the last maxSize, in
	// insertion order
	for i := 1; i <= 5; i++ {
		assert.NoError(t, l.InsertTail(encodeInt(i)))
		assert.True(t, l.Len() <= 3)
	}
	assertInts(t, l, 3, 4, 5)
}

func Test_SetCapacity_TrimsUnderEvictPolicy(t *testing.T) {
	l := intList(1, 2, 3, 4, 5)
	assert.NoError(t, l.SetCapacity(3, EvictOldest))
	assertInts(t, l, 3, 4, 5)
}

func Test_SetCapacity_RejectPolicyDoesNotTrim(t *testing.T) {
	l := intList(1, 2, 3, 4, 5)
	assert.Error(t, l.SetCapacity(3, RejectWhenFull), ErrOverwriteDisabled)
	assertInts(t, l, 1, 2, 3, 4, 5)
}

func Test_SetCapacity_Unlimited(t *testing.T) {
	l, err := New(Configure(4).MaxSize(2, RejectWhenFull))
	assert.NoError(t, err)
	assert.NoError(t, l.InsertTail(encodeInt(1)))
	assert.NoError(t, l.InsertTail(encodeInt(2)))
	assert.NoError(t, l.SetCapacity(Unlimited, RejectWhenFull))
	assert.NoError(t, l.InsertTail(encodeInt(3)))
	assertInts(t, l, 1, 2, 3)
}

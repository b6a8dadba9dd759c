package dlist

import (
	"testing"

	"github.com/nivlib/dlist/assert"
)

func Test_Delete_HeadTailIndex(t *testing.T) {
	l := intList(10, 20, 30, 40)

	assert.NoError(t, l.DeleteAt(1))
	assertInts(t, l, 10, 30, 40)

	assert.NoError(t, l.DeleteHead())
	assertInts(t, l, 30, 40)

	assert.NoError(t, l.DeleteTail())
	assertInts(t, l, 30)

	assert.NoError(t, l.DeleteAt(0))
	assert.True(t, l.Empty())
}

func Test_Delete_Empty(t *testing.T) {
	l := intList()
	assert.Error(t, l.DeleteHead(), ErrInvalidOperation)
	assert.Error(t, l.DeleteTail(), ErrInvalidOperation)
	assert.Error(t, l.DeleteAt(0), ErrInvalidOperation)
}

func Test_Delete_OutOfBounds(t *testing.T) {
	l := intList(1, 2)
	assert.Error(t, l.DeleteAt(-1), ErrIndexOutOfBounds)
	assert.Error(t, l.DeleteAt(2), ErrIndexOutOfBounds)
	assertInts(t, l, 1, 2)
}

func Test_Delete_SentinelRejected(t *testing.T) {
	l := intList(1)
	assert.Error(t, l.deleteNode(l.head), ErrInvalidOperation)
	assert.Error(t, l.deleteNode(l.tail), ErrInvalidOperation)
	assertInts(t, l, 1)
}

func Test_RemoveMatching_CountLimited(t *testing.T) {
	l := intList(1, 2, 3, 2, 2, 4)
	even := func(elem []byte) bool { return decodeInt(elem)%2 == 0 }

	removed, err := l.RemoveMatching(2, FromHead, even)
	assert.NoError(t, err)
	assert.Equal(t, removed, 2)
	assertInts(t, l, 1, 3, 2, 4)
}

func Test_RemoveMatching_All(t *testing.T) {
	l := intList(2, 1, 2, 2, 3, 2)
	even := func(elem []byte) bool { return decodeInt(elem)%2 == 0 }

	// consecutive matches must not corrupt the scan
	removed, err := l.RemoveMatching(DeleteAll, FromHead, even)
	assert.NoError(t, err)
	assert.Equal(t, removed, 4)
	assertInts(t, l, 1, 3)
}

func Test_RemoveMatching_FromTail(t *testing.T) {
	l := intList(2, 1, 4, 3, 6)
	even := func(elem []byte) bool { return decodeInt(elem)%2 == 0 }

	removed, err := l.RemoveMatching(2, FromTail, even)
	assert.NoError(t, err)
	assert.Equal(t, removed, 2)
	assertInts(t, l, 2, 1, 3)
}

func Test_RemoveMatching_NotFound(t *testing.T) {
	l := intList(1, 3, 5)
	even := func(elem []byte) bool { return decodeInt(elem)%2 == 0 }

	removed, err := l.RemoveMatching(DeleteAll, FromHead, even)
	assert.Error(t, err, ErrNotFound)
	assert.Equal(t, removed, 0)

	_, err = l.RemoveMatching(1, FromHead, nil)
	assert.Error(t, err, ErrNilArgument)
}

func Test_Clear(t *testing.T) {
	l := intList(1, 2, 3)
	assert.NoError(t, l.Clear())
	assert.True(t, l.Empty())
	assert.True(t, l.head.next == l.tail)

	// clearing an empty list is a no-op
	assert.NoError(t, l.Clear())
}

func Test_Free_RunsExactlyOncePerNode(t *testing.T) {
	freed := 0
	l, err := New(Configure(4).Free(func(elem []byte) { freed++ }))
	assert.NoError(t, err)

	assert.NoError(t, l.InsertTail(encodeInt(1)))
	assert.NoError(t, l.InsertTail(encodeInt(2)))
	assert.NoError(t, l.InsertHeadPtr(encodeInt(3)))

	assert.NoError(t, l.DeleteTail())
	assert.Equal(t, freed, 1)

	assert.NoError(t, l.Clear())
	assert.Equal(t, freed, 3)
}

func Test_Free_RunsOnEviction(t *testing.T) {
	freed := []int{}
	l, err := New(Configure(4).
		MaxSize(2, EvictOldest).
		Free(func(elem []byte) { freed = append(freed, decodeInt(elem)) }))
	assert.NoError(t, err)

	for i := 1; i <= 4; i++ {
		assert.NoError(t, l.InsertTail(encodeInt(i)))
	}
	assert.List(t, freed, []int{1, 2})
	assertInts(t, l, 3, 4)
}

func Test_Destroy(t *testing.T) {
	freed := 0
	l, err := New(Configure(4).Free(func(elem []byte) { freed++ }))
	assert.NoError(t, err)
	assert.NoError(t, l.InsertTail(encodeInt(1)))
	assert.NoError(t, l.InsertTail(encodeInt(2)))

	l.Destroy()
	assert.Equal(t, freed, 2)
	assert.Equal(t, l.Len(), 0)
	assert.True(t, l.head == nil)
	assert.True(t, l.tail == nil)
}

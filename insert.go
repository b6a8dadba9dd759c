package dlist

import "fmt"

// InsertHead inserts a private copy of data at the head of the list.
func (l *List) InsertHead(data []byte) error {
	return l.insertHead(data, ModeValue)
}

// InsertHeadPtr inserts the slice itself at the head. The list takes
// ownership of data without copying its bytes and will release it through
// the free callback on deletion.
func (l *List) InsertHeadPtr(data []byte) error {
	return l.insertHead(data, ModePointer)
}

// InsertTail inserts a private copy of data at the tail of the list.
func (l *List) InsertTail(data []byte) error {
	return l.insertTail(data, ModeValue)
}

// InsertTailPtr inserts the slice itself at the tail without copying.
func (l *List) InsertTailPtr(data []byte) error {
	return l.insertTail(data, ModePointer)
}

// InsertAt inserts a private copy of data at index. The index is clamped:
// values at or below zero insert at the head, values at or past the current
// length insert at the tail.
func (l *List) InsertAt(index int, data []byte) error {
	return l.insertAt(index, data, ModeValue)
}

// InsertAtPtr is InsertAt in pointer mode.
func (l *List) InsertAtPtr(index int, data []byte) error {
	return l.insertAt(index, data, ModePointer)
}

func (l *List) insertHead(data []byte, mode Mode) error {
	n, err := l.prepareNode(data, mode)
	if err != nil {
		return err
	}
	l.linkBetween(n, l.head, l.head.next)
	return nil
}

func (l *List) insertTail(data []byte, mode Mode) error {
	n, err := l.prepareNode(data, mode)
	if err != nil {
		return err
	}
	l.linkBetween(n, l.tail.prev, l.tail)
	return nil
}

func (l *List) insertAt(index int, data []byte, mode Mode) error {
	if l == nil || data == nil {
		return ErrNilArgument
	}
	if index <= 0 {
		return l.insertHead(data, mode)
	}
	if index >= l.length {
		return l.insertTail(data, mode)
	}
	n, err := l.prepareNode(data, mode)
	if err != nil {
		return err
	}
	// eviction inside prepareNode may have shifted the splice point
	at := l.tail
	if index < l.length {
		at = l.nodeAt(index)
	}
	l.linkBetween(n, at.prev, at)
	return nil
}

// prepareNode validates the element, makes room under the capacity bound and
// builds the unlinked node. Room is made before the node is linked so the
// bound holds at every observable point.
func (l *List) prepareNode(data []byte, mode Mode) (*node, error) {
	if l == nil || data == nil {
		return nil, ErrNilArgument
	}
	if len(data) < l.elementSize {
		return nil, fmt.Errorf("element is %d bytes, need %d: %w", len(data), l.elementSize, ErrInvalidOperation)
	}
	if err := l.makeRoom(); err != nil {
		return nil, err
	}
	return l.newNode(data, mode), nil
}

// makeRoom enforces the capacity bound ahead of one insertion: reject with
// ErrListFull, or delete from the head (FIFO) until the new element fits.
func (l *List) makeRoom() error {
	if l.maxSize == Unlimited || l.length < l.maxSize {
		return nil
	}
	if l.policy == RejectWhenFull {
		return ErrListFull
	}
	for l.length >= l.maxSize {
		if err := l.DeleteHead(); err != nil {
			return err
		}
	}
	return nil
}

func (l *List) linkBetween(n, prev, next *node) {
	n.prev = prev
	n.next = next
	prev.next = n
	next.prev = n
	l.length++
}

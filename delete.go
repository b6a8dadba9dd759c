package dlist

import "fmt"

// deleteNode unlinks n and releases its element. Every public deletion path
// funnels through here, so each node is freed exactly once no matter which
// operation triggered it. Sentinels are never deletable.
func (l *List) deleteNode(n *node) error {
	if l == nil || n == nil {
		return ErrNilArgument
	}
	if n == l.head || n == l.tail {
		return fmt.Errorf("cannot delete a sentinel node: %w", ErrInvalidOperation)
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	if l.free != nil {
		l.free(n.data)
	}
	n.data = nil
	n.prev = nil
	n.next = nil
	l.length--
	return nil
}

// DeleteHead deletes the first element.
func (l *List) DeleteHead() error {
	if l == nil {
		return ErrNilArgument
	}
	if l.Empty() {
		return ErrInvalidOperation
	}
	return l.deleteNode(l.head.next)
}

// DeleteTail deletes the last element.
func (l *List) DeleteTail() error {
	if l == nil {
		return ErrNilArgument
	}
	if l.Empty() {
		return ErrInvalidOperation
	}
	return l.deleteNode(l.tail.prev)
}

// DeleteAt deletes the element at index.
func (l *List) DeleteAt(index int) error {
	if l == nil {
		return ErrNilArgument
	}
	if l.Empty() {
		return ErrInvalidOperation
	}
	if index < 0 || index >= l.length {
		return ErrIndexOutOfBounds
	}
	return l.deleteNode(l.nodeAt(index))
}

// RemoveMatching deletes up to count elements satisfying pred, scanning from
// the chosen end. Pass DeleteAll as count to remove every match. Returns how
// many elements were removed; ErrNotFound when none were.
func (l *List) RemoveMatching(count int, dir Direction, pred Predicate) (int, error) {
	if l == nil || pred == nil {
		return 0, ErrNilArgument
	}
	if l.Empty() {
		return 0, ErrNotFound
	}
	removed := 0
	cur, end := l.head.next, l.tail
	if dir == FromTail {
		cur, end = l.tail.prev, l.head
	}
	for cur != end && (count == DeleteAll || removed < count) {
		// capture the next stop before deleting so the scan survives
		// the unlink
		next := cur.next
		if dir == FromTail {
			next = cur.prev
		}
		if pred(cur.data) {
			if err := l.deleteNode(cur); err != nil {
				return removed, err
			}
			removed++
		}
		cur = next
	}
	if removed == 0 {
		return 0, ErrNotFound
	}
	return removed, nil
}

// Clear deletes every element, releasing each through the free callback when
// one is configured.
func (l *List) Clear() error {
	if l == nil {
		return ErrNilArgument
	}
	for !l.Empty() {
		if err := l.DeleteHead(); err != nil {
			return err
		}
	}
	return nil
}

// Destroy clears the list and unlinks its sentinels. The handle must not be
// used afterwards.
func (l *List) Destroy() {
	if l == nil {
		return
	}
	_ = l.Clear()
	l.head.next = nil
	l.tail.prev = nil
	l.head = nil
	l.tail = nil
}

package dlist

// nodeAt returns the node at index, walking from whichever end is closer.
// The caller guarantees 0 <= index < length.
func (l *List) nodeAt(index int) *node {
	if index <= l.length/2 {
		cur := l.head.next
		for i := 0; i < index; i++ {
			cur = cur.next
		}
		return cur
	}
	cur := l.tail.prev
	for i := l.length - 1; i > index; i-- {
		cur = cur.prev
	}
	return cur
}

// Get returns the element slot at index. The slice aliases list storage and
// is valid only until the next structural mutation.
func (l *List) Get(index int) ([]byte, error) {
	if l == nil {
		return nil, ErrNilArgument
	}
	if index < 0 || index >= l.length {
		return nil, ErrIndexOutOfBounds
	}
	return l.nodeAt(index).data, nil
}

// Set replaces the element at index in place. The configured free callback
// releases the previous element first; its absence is an error rather than a
// silent default. The new value is installed through the copy callback when
// one is configured, else copied byte-for-byte.
func (l *List) Set(index int, data []byte) error {
	if l == nil || data == nil {
		return ErrNilArgument
	}
	if index < 0 || index >= l.length {
		return ErrIndexOutOfBounds
	}
	if l.free == nil {
		return ErrNoFreeFunc
	}
	n := l.nodeAt(index)
	l.free(n.data)
	buf := make([]byte, l.elementSize)
	if l.copyFn != nil {
		l.copyFn(buf, data)
	} else {
		copy(buf, data)
	}
	n.data = buf
	n.mode = ModeValue
	return nil
}

// IndexOf returns the position of the first element equal to data under the
// configured compare callback, scanning from the head.
func (l *List) IndexOf(data []byte) (int, error) {
	if l == nil || data == nil {
		return -1, ErrNilArgument
	}
	if l.compare == nil {
		return -1, ErrNoCompareFunc
	}
	return l.IndexOfFunc(FromHead, func(elem []byte) bool {
		return l.compare(elem, data) == 0
	})
}

// IndexOfFunc returns the position of the first element satisfying pred,
// scanning from the chosen end. The returned index always counts from the
// head.
func (l *List) IndexOfFunc(dir Direction, pred Predicate) (int, error) {
	if l == nil || pred == nil {
		return -1, ErrNilArgument
	}
	if dir == FromTail {
		index := l.length - 1
		for cur := l.tail.prev; cur != l.head; cur = cur.prev {
			if pred(cur.data) {
				return index, nil
			}
			index--
		}
	} else {
		index := 0
		for cur := l.head.next; cur != l.tail; cur = cur.next {
			if pred(cur.data) {
				return index, nil
			}
			index++
		}
	}
	return -1, ErrNotFound
}

// CountMatching tallies the elements satisfying pred in one forward pass.
func (l *List) CountMatching(pred Predicate) int {
	if l == nil || pred == nil {
		return 0
	}
	count := 0
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		if pred(cur.data) {
			count++
		}
	}
	return count
}

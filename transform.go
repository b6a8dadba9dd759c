package dlist

import "fmt"

// Reverse flips the list in place: one pass of pointer swaps, no element
// copying.
func (l *List) Reverse() error {
	if l == nil {
		return ErrNilArgument
	}
	if l.length <= 1 {
		return nil
	}
	first, last := l.head.next, l.tail.prev
	for cur := l.head.next; cur != l.tail; {
		next := cur.next
		cur.next, cur.prev = cur.prev, next
		cur = next
	}
	l.head.next = last
	last.prev = l.head
	first.next = l.tail
	l.tail.prev = first
	return nil
}

// Rotate shifts the list so the element at position positions becomes the
// new head. Negative values rotate the other way; magnitudes wrap modulo the
// length. Pure pointer surgery, no element copying.
func (l *List) Rotate(positions int) error {
	if l == nil {
		return ErrNilArgument
	}
	if l.length <= 1 {
		return nil
	}
	actual := positions % l.length
	if actual < 0 {
		actual += l.length
	}
	if actual == 0 {
		return nil
	}
	split := l.head.next
	for i := 0; i < actual; i++ {
		split = split.next
	}
	if split == l.tail {
		return nil
	}
	firstStart := l.head.next
	firstEnd := split.prev
	secondEnd := l.tail.prev

	// relink as head -> second part -> first part -> tail
	l.head.next = split
	split.prev = l.head
	secondEnd.next = firstStart
	firstStart.prev = secondEnd
	firstEnd.next = l.tail
	l.tail.prev = firstEnd
	return nil
}

// Slice builds a new list holding copies of the elements in [start, end).
// end is clamped to the length; start must name a valid range.
func (l *List) Slice(start, end int) (*List, error) {
	if l == nil {
		return nil, ErrNilArgument
	}
	if start < 0 || start >= end || start >= l.length {
		return nil, fmt.Errorf("slice bounds [%d, %d): %w", start, end, ErrInvalidOperation)
	}
	if end > l.length {
		end = l.length
	}
	out, err := l.derived()
	if err != nil {
		return nil, err
	}
	cur := l.head.next
	for i := 0; i < start; i++ {
		cur = cur.next
	}
	for i := start; i < end; i++ {
		if err := out.InsertTail(cur.data); err != nil {
			out.Destroy()
			return nil, err
		}
		cur = cur.next
	}
	return out, nil
}

// Copy builds a new list holding copies of every element, inheriting the
// source's callback configuration.
func (l *List) Copy() (*List, error) {
	if l == nil {
		return nil, ErrNilArgument
	}
	out, err := l.derived()
	if err != nil {
		return nil, err
	}
	if err := out.Extend(l); err != nil {
		out.Destroy()
		return nil, err
	}
	return out, nil
}

// Extend appends a copy of every element of other. Extending a list with
// itself appends one copy of its original elements.
func (l *List) Extend(other *List) error {
	if l == nil || other == nil {
		return ErrNilArgument
	}
	if l.elementSize != other.elementSize {
		return fmt.Errorf("element size mismatch (%d vs %d): %w", l.elementSize, other.elementSize, ErrInvalidOperation)
	}
	n := other.length
	cur := other.head.next
	for i := 0; i < n; i++ {
		if err := l.InsertTail(cur.data); err != nil {
			return err
		}
		cur = cur.next
	}
	return nil
}

// Concat builds a new list holding copies of a's elements followed by b's.
// Element sizes must match exactly. Configuration comes from a.
func Concat(a, b *List) (*List, error) {
	if a == nil || b == nil {
		return nil, ErrNilArgument
	}
	if a.elementSize != b.elementSize {
		return nil, fmt.Errorf("element size mismatch (%d vs %d): %w", a.elementSize, b.elementSize, ErrInvalidOperation)
	}
	out, err := a.Copy()
	if err != nil {
		return nil, err
	}
	if err := out.Extend(b); err != nil {
		out.Destroy()
		return nil, err
	}
	return out, nil
}

// Filter builds a new list holding copies of the elements for which pred
// holds, inheriting the source's callback configuration.
func (l *List) Filter(pred Predicate) (*List, error) {
	if l == nil || pred == nil {
		return nil, ErrNilArgument
	}
	out, err := l.derived()
	if err != nil {
		return nil, err
	}
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		if !pred(cur.data) {
			continue
		}
		if err := out.InsertTail(cur.data); err != nil {
			out.Destroy()
			return nil, err
		}
	}
	return out, nil
}

// Map builds a list of a different element size by running fn over every
// element. Only the free and copy callbacks carry over; print and compare
// are specific to the source element type and must be reconfigured.
func (l *List) Map(fn MapFunc, newElementSize int) (*List, error) {
	if l == nil || fn == nil {
		return nil, ErrNilArgument
	}
	if newElementSize <= 0 {
		return nil, fmt.Errorf("element size %d: %w", newElementSize, ErrInvalidOperation)
	}
	out, err := New(Configure(newElementSize).Free(l.free).Copy(l.copyFn))
	if err != nil {
		return nil, err
	}
	scratch := make([]byte, newElementSize)
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		fn(scratch, cur.data)
		if err := out.InsertTail(scratch); err != nil {
			out.Destroy()
			return nil, err
		}
	}
	return out, nil
}

// MinBy returns the smallest element under cmp (falling back to the
// configured compare callback). The returned slice aliases list storage and
// is valid only until the next structural mutation.
func (l *List) MinBy(cmp CompareFunc) ([]byte, error) {
	return l.bestBy(cmp, -1)
}

// MaxBy returns the largest element under cmp. Same reference semantics as
// MinBy.
func (l *List) MaxBy(cmp CompareFunc) ([]byte, error) {
	return l.bestBy(cmp, 1)
}

func (l *List) bestBy(cmp CompareFunc, sign int) ([]byte, error) {
	if l == nil {
		return nil, ErrNilArgument
	}
	if cmp == nil {
		cmp = l.compare
	}
	if cmp == nil {
		return nil, ErrNoCompareFunc
	}
	if l.Empty() {
		return nil, ErrNotFound
	}
	best := l.head.next.data
	for cur := l.head.next.next; cur != l.tail; cur = cur.next {
		if c := cmp(cur.data, best); (sign < 0 && c < 0) || (sign > 0 && c > 0) {
			best = cur.data
		}
	}
	return best, nil
}

// Unique builds a new list keeping the first occurrence of each element
// under cmp.
func (l *List) Unique(cmp CompareFunc) (*List, error) {
	return l.UniqueAdvanced(cmp, FromHead)
}

// UniqueAdvanced builds a new list with duplicates dropped. FromHead keeps
// each element's first occurrence; FromTail keeps the last occurrence's
// value while still preserving the original relative order. cmp must induce
// a total order over the stored elements; it falls back to the configured
// compare callback.
func (l *List) UniqueAdvanced(cmp CompareFunc, order Direction) (*List, error) {
	if l == nil {
		return nil, ErrNilArgument
	}
	if cmp == nil {
		cmp = l.compare
	}
	if cmp == nil {
		return nil, ErrNoCompareFunc
	}
	out, err := l.derived()
	if err != nil {
		return nil, err
	}
	if order == FromTail {
		for cur := l.tail.prev; cur != l.head; cur = cur.prev {
			if out.contains(cur.data, cmp) {
				continue
			}
			// iterating backwards, so inserting at the head keeps
			// the original relative order
			if err := out.InsertHead(cur.data); err != nil {
				out.Destroy()
				return nil, err
			}
		}
		return out, nil
	}
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		if out.contains(cur.data, cmp) {
			continue
		}
		if err := out.InsertTail(cur.data); err != nil {
			out.Destroy()
			return nil, err
		}
	}
	return out, nil
}

// contains is a comparator membership scan, O(n) per call.
func (l *List) contains(data []byte, cmp CompareFunc) bool {
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		if cmp(cur.data, data) == 0 {
			return true
		}
	}
	return false
}

// Intersection builds a new list with the elements of a that also appear in
// b, deduplicated, in a's order. Configuration comes from a.
func Intersection(a, b *List, cmp CompareFunc) (*List, error) {
	cmp, err := setOpCompare(a, b, cmp)
	if err != nil {
		return nil, err
	}
	out, err := a.derived()
	if err != nil {
		return nil, err
	}
	for cur := a.head.next; cur != a.tail; cur = cur.next {
		if !b.contains(cur.data, cmp) || out.contains(cur.data, cmp) {
			continue
		}
		if err := out.InsertTail(cur.data); err != nil {
			out.Destroy()
			return nil, err
		}
	}
	return out, nil
}

// Union builds a new list with every distinct element of a followed by the
// elements of b not already present, in encounter order.
func Union(a, b *List, cmp CompareFunc) (*List, error) {
	cmp, err := setOpCompare(a, b, cmp)
	if err != nil {
		return nil, err
	}
	out, err := a.UniqueAdvanced(cmp, FromHead)
	if err != nil {
		return nil, err
	}
	for cur := b.head.next; cur != b.tail; cur = cur.next {
		if out.contains(cur.data, cmp) {
			continue
		}
		if err := out.InsertTail(cur.data); err != nil {
			out.Destroy()
			return nil, err
		}
	}
	return out, nil
}

func setOpCompare(a, b *List, cmp CompareFunc) (CompareFunc, error) {
	if a == nil || b == nil {
		return nil, ErrNilArgument
	}
	if cmp == nil {
		cmp = a.compare
	}
	if cmp == nil {
		return nil, ErrNoCompareFunc
	}
	if a.elementSize != b.elementSize {
		return nil, fmt.Errorf("element size mismatch (%d vs %d): %w", a.elementSize, b.elementSize, ErrInvalidOperation)
	}
	return cmp, nil
}

// Sort orders the list in place with adjacent-swap passes over the linked
// structure: stable, O(n^2) and allocation-free. Element slots move between
// nodes without being copied or released, so free callbacks never fire. Set
// reverse for descending order; cmp falls back to the configured compare
// callback.
func (l *List) Sort(reverse bool, cmp CompareFunc) error {
	if l == nil {
		return ErrNilArgument
	}
	if cmp == nil {
		cmp = l.compare
	}
	if cmp == nil {
		return ErrNoCompareFunc
	}
	if l.length <= 1 {
		return nil
	}
	for swapped := true; swapped; {
		swapped = false
		for cur := l.head.next; cur.next != l.tail; cur = cur.next {
			c := cmp(cur.data, cur.next.data)
			if (!reverse && c > 0) || (reverse && c < 0) {
				cur.data, cur.next.data = cur.next.data, cur.data
				cur.mode, cur.next.mode = cur.next.mode, cur.mode
				swapped = true
			}
		}
	}
	return nil
}

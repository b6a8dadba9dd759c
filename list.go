// A type-agnostic doubly linked list storing elements of a fixed byte size.
package dlist

import "fmt"

type (
	// PrintFunc renders one element for display.
	PrintFunc func(elem []byte) string
	// CompareFunc returns a value less than, equal to or greater than zero
	// when a is ordered before, equal to or after b.
	CompareFunc func(a, b []byte) int
	// FreeFunc releases any resources owned by an element. It runs exactly
	// once per node, regardless of which operation deletes it.
	FreeFunc func(elem []byte)
	// CopyFunc deep-copies src into dst. dst is always elementSize bytes.
	CopyFunc func(dst, src []byte)
	// Predicate tests one element.
	Predicate func(elem []byte) bool
	// MapFunc transforms src, writing the result into dst.
	MapFunc func(dst, src []byte)
)

// Direction selects which end a scan starts from.
type Direction int

const (
	FromHead Direction = iota
	FromTail
)

// DeleteAll removes every match when passed as RemoveMatching's count.
const DeleteAll = -1

// List is the handle for all operations. The head and tail sentinels are
// permanent and never part of the logical sequence: an empty list has
// head.next == tail and tail.prev == head.
type List struct {
	head        *node
	tail        *node
	length      int
	elementSize int
	maxSize     int
	policy      OverflowPolicy
	print       PrintFunc
	compare     CompareFunc
	free        FreeFunc
	copyFn      CopyFunc
}

// New creates an empty list from the given configuration.
// See dlist.Configure() for creating a configuration.
func New(config *Configuration) (*List, error) {
	if config == nil {
		return nil, ErrNilArgument
	}
	if config.elementSize <= 0 {
		return nil, fmt.Errorf("element size %d: %w", config.elementSize, ErrInvalidOperation)
	}
	l := &List{
		head:        &node{},
		tail:        &node{},
		elementSize: config.elementSize,
		maxSize:     config.maxSize,
		policy:      config.policy,
		print:       config.print,
		compare:     config.compare,
		free:        config.free,
		copyFn:      config.copyFn,
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l, nil
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Empty reports whether the list holds no elements.
func (l *List) Empty() bool {
	return l.Len() == 0
}

// ElementSize returns the fixed byte size of each element slot.
func (l *List) ElementSize() int {
	if l == nil {
		return 0
	}
	return l.elementSize
}

func (l *List) SetPrintFunc(fn PrintFunc) {
	if l != nil {
		l.print = fn
	}
}

func (l *List) SetCompareFunc(fn CompareFunc) {
	if l != nil {
		l.compare = fn
	}
}

func (l *List) SetFreeFunc(fn FreeFunc) {
	if l != nil {
		l.free = fn
	}
}

func (l *List) SetCopyFunc(fn CopyFunc) {
	if l != nil {
		l.copyFn = fn
	}
}

// SetCapacity bounds the list to max elements under the given overflow
// policy. If the list is already over the new bound, EvictOldest trims from
// the head until it fits, while RejectWhenFull records the bound but reports
// ErrOverwriteDisabled without trimming.
func (l *List) SetCapacity(max int, policy OverflowPolicy) error {
	if l == nil {
		return ErrNilArgument
	}
	l.maxSize = max
	l.policy = policy
	if l.maxSize == Unlimited || l.length <= l.maxSize {
		return nil
	}
	if l.policy == RejectWhenFull {
		return ErrOverwriteDisabled
	}
	for l.length > l.maxSize {
		if err := l.DeleteHead(); err != nil {
			return err
		}
	}
	return nil
}

// inheritConfiguration copies the callback set from src onto a derived list.
func (l *List) inheritConfiguration(src *List) {
	l.print = src.print
	l.compare = src.compare
	l.free = src.free
	l.copyFn = src.copyFn
}

// derived creates an empty list of the same element size with src's
// callbacks, the starting point for copy, slice, filter and the set
// operations.
func (l *List) derived() (*List, error) {
	out, err := New(Configure(l.elementSize))
	if err != nil {
		return nil, err
	}
	out.inheritConfiguration(l)
	return out, nil
}

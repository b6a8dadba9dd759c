package dlist

// Mode tags how a node came to own its element slot.
type Mode int

const (
	// ModeValue means the node owns a private copy of the element bytes.
	ModeValue Mode = iota
	// ModePointer means the node holds a caller-supplied slice whose
	// lifetime the list now manages for destruction purposes only.
	ModePointer
)

type node struct {
	data []byte
	prev *node
	next *node
	mode Mode
}

// newNode builds an unlinked node for data. In value mode the element bytes
// are copied into a private slot, through the copy callback when one is
// configured. In pointer mode the slice is stored as-is.
func (l *List) newNode(data []byte, mode Mode) *node {
	n := &node{mode: mode}
	if mode == ModePointer {
		n.data = data
		return n
	}
	n.data = make([]byte, l.elementSize)
	if l.copyFn != nil {
		l.copyFn(n.data, data)
	} else {
		copy(n.data, data)
	}
	return n
}

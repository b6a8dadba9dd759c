package dlist

import "errors"

// Every fallible operation reports one of these sentinels, possibly wrapped
// with extra context. Callers should test with errors.Is.
var (
	ErrNilArgument       = errors.New("nil argument provided")
	ErrIndexOutOfBounds  = errors.New("index out of bounds")
	ErrNotFound          = errors.New("element not found")
	ErrListFull          = errors.New("list has reached maximum capacity")
	ErrOverwriteDisabled = errors.New("overwrite is disabled and list is full")
	ErrInvalidOperation  = errors.New("invalid operation for current state")
	ErrNoCompareFunc     = errors.New("compare function required but not provided")
	ErrNoPrintFunc       = errors.New("print function required but not provided")
	ErrNoFreeFunc        = errors.New("free function required but not provided")
)

package nbt

import (
	"errors"
	"fmt"
)

var (
	ErrFormat          = errors.New("format error")
	ErrDepthExceeded   = errors.New("depth exceeded")
	ErrIO              = errors.New("i/o failure")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// TypeMismatchError reports an attempt to store a tag of type Got in a
// container constrained to Want.
type TypeMismatchError struct {
	Want Type
	Got  Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("trying to add tag of type %d to list of %d", e.Got, e.Want)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// IndexError reports an index outside [0, Len) (or [0, Len] for inserts).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0:%d]", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Index: i, Len: n}
	}
	return nil
}

func checkInsert(i, n int) error {
	if i < 0 || i > n {
		return &IndexError{Index: i, Len: n}
	}
	return nil
}

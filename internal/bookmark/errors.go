package bookmark

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateName   = errors.New("bookmark name already exists")
	ErrIndexOutOfRange = errors.New("bookmark index out of range")
)

// DuplicateNameError is returned by Add when the name is taken.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("bookmark %q already exists", e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// IndexOutOfRangeError is returned by operations addressing a slot that does not exist.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("bookmark index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

package stattab

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHeaders reports construction with an empty header set.
	ErrNoHeaders = errors.New("no headers configured")

	// ErrNoRow reports an Update before the first Add.
	ErrNoRow = errors.New("no row available, call Add first")
)

// DuplicateHeaderError reports a repeated key in the construction header set.
type DuplicateHeaderError struct {
	Key string
}

func (e *DuplicateHeaderError) Error() string {
	return fmt.Sprintf("duplicate header key %q", e.Key)
}

// UnknownHeaderError reports a sample, rename, or reference targeting a
// header key that does not exist.
type UnknownHeaderError struct {
	Key string
}

func (e *UnknownHeaderError) Error() string {
	return fmt.Sprintf("unknown header key %q", e.Key)
}

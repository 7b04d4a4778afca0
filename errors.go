package jsondoc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the input is not well-formed JSON.
	ErrInvalidInput = errors.New("invalid json input")
	// ErrCapacity is returned when the input is larger than the parser's
	// maximum capacity.
	ErrCapacity = errors.New("input exceeds capacity")
	// ErrDepth is returned when containers nest deeper than the parser's
	// maximum depth.
	ErrDepth = errors.New("maximum nesting depth exceeded")

	// ErrPathNotFound matches every *PathError.
	ErrPathNotFound = errors.New("path not found")

	ErrNoSuchKey       = errors.New("no such key")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrIncorrectType   = errors.New("incorrect type")

	// ErrInvalidPath is returned by Select for a malformed JSONPath.
	ErrInvalidPath = errors.New("invalid jsonpath expression")
)

// PathError records the first segment of a path that could not be resolved.
// It matches ErrPathNotFound with errors.Is and unwraps to the reason:
// ErrNoSuchKey, ErrIndexOutOfRange or ErrIncorrectType.
type PathError struct {
	Path    string // full path as given by the caller
	Segment string // unescaped segment that failed
	Pos     int    // zero-based position of Segment in the path
	Err     error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %q: segment %d (%q): %v", e.Path, e.Pos, e.Segment, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

func (e *PathError) Is(target error) bool {
	return target == ErrPathNotFound
}

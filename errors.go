package transduce

import "errors"

var (
	// ErrClosed is returned by Send after Close has run or after the stage
	// has terminated the stream.
	ErrClosed = errors.New("transduce: sender closed")
	// ErrInvalidSize is returned by partition constructors for sizes below 1.
	ErrInvalidSize = errors.New("transduce: partition size must be at least 1")
)

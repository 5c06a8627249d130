package buf

import "errors"

var (
	// ErrOverflow indicates size arithmetic on untrusted counts overflowed int.
	ErrOverflow = errors.New("buf: size overflow")
	// ErrOutOfBounds indicates a range extends past the end of the buffer.
	ErrOutOfBounds = errors.New("buf: out of bounds")
)

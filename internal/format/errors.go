package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a record.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrOverflow indicates a declared element count overruns the buffer arithmetic.
	ErrOverflow = errors.New("format: element count overflow")
	// ErrNullOffset indicates resolution of an offset holding a null sentinel.
	ErrNullOffset = errors.New("format: null offset")
	// ErrNoTerminator indicates a string with no nul byte before the end of the buffer.
	ErrNoTerminator = errors.New("format: missing nul terminator")
	// ErrInvalidText indicates a path that is not valid UTF-8.
	ErrInvalidText = errors.New("format: invalid text encoding")
	// ErrUnsupportedVersion indicates a header major version other than 1.
	ErrUnsupportedVersion = errors.New("format: unsupported major version")
	// ErrIndexRange indicates an index beyond a list's declared count.
	ErrIndexRange = errors.New("format: index out of range")
	// ErrNoBuckets indicates a hash table declaring zero buckets.
	ErrNoBuckets = errors.New("format: hash table has no buckets")
)

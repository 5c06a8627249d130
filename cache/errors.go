package cache

import (
	"errors"

	"github.com/joshuapare/iconcache/internal/format"
	"github.com/joshuapare/iconcache/internal/mmfile"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindDecode ErrKind = iota // header, hash table or directory list failed to validate
	ErrKindIO                    // the file could not be opened, locked or mapped
	ErrKindState                 // invalid operation for current state (e.g., closed)
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindDecode:
		return "decode"
	case ErrKindIO:
		return "io"
	case ErrKindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Causes reachable with errors.Is through an *Error.
var (
	ErrTruncated          = format.ErrTruncated
	ErrOverflow           = format.ErrOverflow
	ErrNullOffset         = format.ErrNullOffset
	ErrNoTerminator       = format.ErrNoTerminator
	ErrInvalidText        = format.ErrInvalidText
	ErrUnsupportedVersion = format.ErrUnsupportedVersion
	ErrNoBuckets          = format.ErrNoBuckets
	ErrLocked             = mmfile.ErrLocked
)

// ErrClosed is returned when a File is used after Close.
var ErrClosed = &Error{Kind: ErrKindState, Msg: "icon cache is closed"}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func wrapDecodeErr(msg string, err error) error {
	return &Error{Kind: ErrKindDecode, Msg: msg, Err: err}
}

func wrapIOErr(msg string, err error) error {
	return &Error{Kind: ErrKindIO, Msg: msg, Err: err}
}

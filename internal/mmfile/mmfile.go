// Package mmfile supplies the immutable byte buffer the cache decoder reads:
// the file is opened read-only, held under a shared advisory lock, and mapped
// into memory for as long as the Mapping is open.
package mmfile

import "errors"

// ErrLocked is returned by a non-blocking Acquire when another process holds
// an exclusive lock on the file.
var ErrLocked = errors.New("mmfile: lock held by another process")

// Options controls how Acquire waits for the advisory lock.
type Options struct {
	// NonBlocking fails with ErrLocked instead of waiting for the lock.
	NonBlocking bool
}

// Bytes returns the mapped contents. The slice must not be written to and is
// only valid until Close.
func (m *Mapping) Bytes() []byte {
	if m == nil {
		return nil
	}
	return m.data
}

// Len returns the size of the mapping in bytes.
func (m *Mapping) Len() int { return len(m.Bytes()) }

//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Mapping is a locked, read-only memory mapping of a file.
type Mapping struct {
	f    *os.File
	data []byte
}

// Acquire opens path for reading, takes a shared flock on it and maps its
// contents. The lock is held until Close. A zero-length file yields an empty
// buffer.
func Acquire(path string, opts Options) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if err := lockShared(f, opts.NonBlocking); err != nil {
		_ = f.Close()
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = unlockAndClose(f)
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &Mapping{f: f, data: []byte{}}, nil
	}
	if size > int64(^uint(0)>>1) {
		_ = unlockAndClose(f)
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		_ = unlockAndClose(f)
		return nil, fmt.Errorf("mmfile: mmap %s: %w", path, err)
	}
	return &Mapping{f: f, data: data}, nil
}

func lockShared(f *os.File, nonBlocking bool) error {
	how := unix.LOCK_SH
	if nonBlocking {
		how |= unix.LOCK_NB
	}
	for {
		err := unix.Flock(int(f.Fd()), how)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.EWOULDBLOCK):
			return fmt.Errorf("%s: %w", f.Name(), ErrLocked)
		default:
			return fmt.Errorf("mmfile: flock %s: %w", f.Name(), err)
		}
	}
}

func unlockAndClose(f *os.File) error {
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
	return f.Close()
}

// Close unmaps the buffer, then releases the lock. Calling Close more than
// once is a no-op.
func (m *Mapping) Close() error {
	if m == nil || m.f == nil {
		return nil
	}
	var err error
	if len(m.data) > 0 {
		if uerr := unix.Munmap(m.data); uerr != nil && !errors.Is(uerr, unix.EINVAL) {
			err = uerr
		}
	}
	m.data = nil
	if cerr := unlockAndClose(m.f); cerr != nil && err == nil {
		err = cerr
	}
	m.f = nil
	return err
}

//go:build !unix

package mmfile

import "os"

// Mapping holds the file contents in memory where mmap and flock are not
// available. No lock is taken.
type Mapping struct {
	data   []byte
	closed bool
}

// Acquire reads the entire file.
func Acquire(path string, _ Options) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data}, nil
}

func (m *Mapping) Close() error {
	if m == nil || m.closed {
		return nil
	}
	m.closed = true
	m.data = nil
	return nil
}

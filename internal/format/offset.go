package format

import (
	"errors"
	"fmt"

	"github.com/joshuapare/iconcache/internal/buf"
)

// Record is implemented by every view an Offset can point at. decodeAt
// validates that the record starting at off fits inside b, including any
// trailing array whose length is stored in the record itself.
type Record[T any] interface {
	decodeAt(b []byte, off int) (T, error)
}

// Offset is a byte position in the cache file that is expected to hold a T.
type Offset[T Record[T]] uint32

// IsNull reports whether o holds either null sentinel. Different fields use
// different conventions (0 for optional records, 0xFFFFFFFF for chains and
// empty buckets), so both are always treated as absent.
func (o Offset[T]) IsNull() bool {
	return o == NullOffset || o == InvalidOffset
}

// Resolve validates the record at o and returns a view aliasing b.
func (o Offset[T]) Resolve(b []byte) (T, error) {
	var zero T
	if o.IsNull() {
		return zero, ErrNullOffset
	}
	if uint64(o) >= uint64(len(b)) {
		return zero, fmt.Errorf("offset 0x%x beyond len %d: %w", uint32(o), len(b), ErrTruncated)
	}
	return zero.decodeAt(b, int(o))
}

// fixed returns b[off:off+size] or ErrTruncated.
func fixed(b []byte, off, size int, what string) ([]byte, error) {
	raw, ok := buf.Slice(b, off, size)
	if !ok {
		return nil, fmt.Errorf("%s at 0x%x: %w", what, off, ErrTruncated)
	}
	return raw, nil
}

// list validates a count-prefixed array of elemSize-byte elements at off and
// returns the bytes covering the count and every element.
func list(b []byte, off, elemSize int, what string) ([]byte, error) {
	count, ok := buf.U32BE(b, off)
	if !ok {
		return nil, fmt.Errorf("%s at 0x%x: %w", what, off, ErrTruncated)
	}
	end, err := buf.CheckListBounds(len(b), off, CountSize, int(count), elemSize)
	if err != nil {
		if errors.Is(err, buf.ErrOverflow) {
			return nil, fmt.Errorf("%s at 0x%x: %w: %v", what, off, ErrOverflow, err)
		}
		return nil, fmt.Errorf("%s at 0x%x: %w: %v", what, off, ErrTruncated, err)
	}
	return b[off:end:end], nil
}

// listCount reads the count of a slice previously validated by list.
func listCount(raw []byte) uint32 {
	n, _ := buf.U32BE(raw, 0)
	return n
}

// element returns element i of a validated list, checked against the list's
// own count.
func element(raw []byte, i uint32, elemSize int) ([]byte, bool) {
	if i >= listCount(raw) {
		return nil, false
	}
	return buf.Slice(raw, CountSize+int(i)*elemSize, elemSize)
}

func u16(raw []byte, off int) uint16 {
	v, _ := buf.U16BE(raw, off)
	return v
}

func u32(raw []byte, off int) uint32 {
	v, _ := buf.U32BE(raw, off)
	return v
}

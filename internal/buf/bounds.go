package buf

import (
	"bytes"
	"fmt"
	"math"
	"unsafe"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false on
// overflow or when either operand is negative. Used for count * elementSize.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// CheckListBounds validates that a fixed prefix of prefixSize bytes followed by
// count elements of elementSize bytes fits in a buffer of bufLen bytes starting
// at offset. It returns the end offset of the record.
//
//	end, err := buf.CheckListBounds(len(data), off, 4, int(count), 8)
//	if err != nil {
//	    return fmt.Errorf("image list: %w", err)
//	}
func CheckListBounds(bufLen, offset, prefixSize, count, elementSize int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if prefixSize < 0 || elementSize < 0 {
		return 0, fmt.Errorf("negative record size: prefix=%d elem=%d", prefixSize, elementSize)
	}

	arr, ok := MulOverflowSafe(count, elementSize)
	if !ok {
		return 0, fmt.Errorf("%w: count=%d * elemSize=%d", ErrOverflow, count, elementSize)
	}
	total, ok := AddOverflowSafe(prefixSize, arr)
	if !ok {
		return 0, fmt.Errorf("%w: prefix=%d + size=%d", ErrOverflow, prefixSize, arr)
	}
	end, ok := AddOverflowSafe(offset, total)
	if !ok {
		return 0, fmt.Errorf("%w: offset=%d + size=%d", ErrOverflow, offset, total)
	}
	if end > bufLen {
		return 0, fmt.Errorf("%w: end=%d > len=%d", ErrOutOfBounds, end, bufLen)
	}
	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}

// CString returns the bytes of the nul-terminated string starting at off,
// without the terminator. ok is false when off is out of range or no nul
// byte exists before the end of b.
func CString(b []byte, off int) ([]byte, bool) {
	if off < 0 || off >= len(b) {
		return nil, false
	}
	n := bytes.IndexByte(b[off:], 0)
	if n < 0 {
		return nil, false
	}
	return b[off : off+n : off+n], true
}

// String converts b to a string that aliases b's memory. The bytes must never
// be modified afterwards, which holds for read-only mappings.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

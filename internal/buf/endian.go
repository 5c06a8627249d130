// Package buf contains bounds-checked, big-endian decoding helpers shared by
// the format decoders. Nothing in here allocates.
package buf

import "encoding/binary"

// U16BE reads a big-endian uint16 at off. ok is false when b[off:off+2] is out of range.
func U16BE(b []byte, off int) (uint16, bool) {
	s, ok := Slice(b, off, 2)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint16(s), true
}

// U32BE reads a big-endian uint32 at off. ok is false when b[off:off+4] is out of range.
func U32BE(b []byte, off int) (uint32, bool) {
	s, ok := Slice(b, off, 4)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint32(s), true
}

// PutU16BE writes v at off in network order. The caller guarantees the range is valid.
func PutU16BE(b []byte, off int, v uint16) {
	binary.BigEndian.PutUint16(b[off:off+2], v)
}

// PutU32BE writes v at off in network order. The caller guarantees the range is valid.
func PutU32BE(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:off+4], v)
}

package format

import "fmt"

// Header is the 12-byte record at the start of every cache file.
type Header struct {
	raw []byte
}

// ParseHeader validates the header at the start of b. The major version must
// be SupportedMajorVersion; the minor version is informational.
func ParseHeader(b []byte) (Header, error) {
	raw, err := fixed(b, 0, HeaderSize, "header")
	if err != nil {
		return Header{}, err
	}
	h := Header{raw: raw}
	if h.MajorVersion() != SupportedMajorVersion {
		return Header{}, fmt.Errorf("header: major=%d: %w", h.MajorVersion(), ErrUnsupportedVersion)
	}
	return h, nil
}

func (h Header) MajorVersion() uint16 { return u16(h.raw, HeaderMajorOffset) }
func (h Header) MinorVersion() uint16 { return u16(h.raw, HeaderMinorOffset) }

// HashTable returns the offset of the bucket table.
func (h Header) HashTable() Offset[HashTable] {
	return Offset[HashTable](u32(h.raw, HeaderHashOffset))
}

// DirectoryList returns the offset of the theme's directory list.
func (h Header) DirectoryList() Offset[DirectoryList] {
	return Offset[DirectoryList](u32(h.raw, HeaderDirListOffset))
}

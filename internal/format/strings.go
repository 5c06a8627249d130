package format

import (
	"fmt"
	"unicode/utf8"

	"github.com/joshuapare/iconcache/internal/buf"
)

// CString is a nul-terminated byte string. Bytes excludes the terminator.
type CString struct {
	raw []byte
}

func (CString) decodeAt(b []byte, off int) (CString, error) {
	raw, ok := buf.CString(b, off)
	if !ok {
		return CString{}, fmt.Errorf("string at 0x%x: %w", off, ErrNoTerminator)
	}
	return CString{raw: raw}, nil
}

func (s CString) Bytes() []byte { return s.raw }

// String aliases the buffer; no copy is made.
func (s CString) String() string { return buf.String(s.raw) }

// Path is a CString holding a theme-relative directory, required to be UTF-8.
type Path struct {
	raw []byte
}

func (Path) decodeAt(b []byte, off int) (Path, error) {
	s, err := CString{}.decodeAt(b, off)
	if err != nil {
		return Path{}, err
	}
	if !utf8.Valid(s.raw) {
		return Path{}, fmt.Errorf("path at 0x%x: %w", off, ErrInvalidText)
	}
	return Path{raw: s.raw}, nil
}

func (p Path) Bytes() []byte  { return p.raw }
func (p Path) String() string { return buf.String(p.raw) }

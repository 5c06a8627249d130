package format

import "fmt"

// DirectoryList is n_directories (u32) followed by that many path offsets.
// Images refer to directories by position in this list.
type DirectoryList struct {
	raw []byte
}

func (DirectoryList) decodeAt(b []byte, off int) (DirectoryList, error) {
	raw, err := list(b, off, OffsetSize, "directory list")
	if err != nil {
		return DirectoryList{}, err
	}
	return DirectoryList{raw: raw}, nil
}

func (d DirectoryList) Len() uint32 { return listCount(d.raw) }

// At returns the path offset of directory i.
func (d DirectoryList) At(i uint32) (Offset[Path], bool) {
	e, ok := element(d.raw, i, OffsetSize)
	if !ok {
		return 0, false
	}
	return Offset[Path](u32(e, 0)), true
}

// Path resolves directory i against b.
func (d DirectoryList) Path(b []byte, i uint32) (Path, error) {
	off, ok := d.At(i)
	if !ok {
		return Path{}, fmt.Errorf("directory %d of %d: %w", i, d.Len(), ErrIndexRange)
	}
	return off.Resolve(b)
}

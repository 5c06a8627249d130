package cache

import (
	"iter"

	"github.com/joshuapare/iconcache/internal/format"
)

// Flags records which files a theme directory holds for an image.
type Flags = format.Flags

const (
	HasSuffixXPM = format.HasSuffixXPM
	HasSuffixSVG = format.HasSuffixSVG
	HasSuffixPNG = format.HasSuffixPNG
	HasIconFile  = format.HasIconFile
)

// Icon is a named icon and the images the theme provides for it.
type Icon struct {
	c      *Cache
	offset uint32
	name   format.CString
	images format.ImageList
}

// Name returns the icon name. The string aliases the cache buffer.
func (i Icon) Name() string { return i.name.String() }

// NameBytes returns the icon name as a slice of the cache buffer.
func (i Icon) NameBytes() []byte { return i.name.Bytes() }

// Offset returns the file offset of the icon record.
func (i Icon) Offset() uint32 { return i.offset }

func (i Icon) Images() ImageList { return ImageList{c: i.c, raw: i.images} }

// ImageList is the list of images for one icon.
type ImageList struct {
	c   *Cache
	raw format.ImageList
}

// Len returns the declared number of images.
func (l ImageList) Len() int { return int(l.raw.Len()) }

// Image returns image idx. ok is false when idx is out of range or the
// image's directory does not resolve.
func (l ImageList) Image(idx int) (Image, bool) {
	if idx < 0 || idx >= l.Len() {
		return Image{}, false
	}
	raw, ok := l.raw.At(uint32(idx))
	if !ok {
		return Image{}, false
	}
	dir, err := l.c.dirs.Path(l.c.buf, uint32(raw.DirectoryIndex()))
	if err != nil {
		return Image{}, false
	}
	return Image{c: l.c, raw: raw, dir: dir}, true
}

// All yields the images that decode, in list order.
func (l ImageList) All() iter.Seq[Image] {
	return func(yield func(Image) bool) {
		for idx := range l.Len() {
			im, ok := l.Image(idx)
			if !ok {
				continue
			}
			if !yield(im) {
				return
			}
		}
	}
}

// Image is one rendition of an icon inside one theme directory.
type Image struct {
	c   *Cache
	raw format.Image
	dir format.Path
}

// DirectoryIndex is the image's position in the cache's directory list.
func (im Image) DirectoryIndex() int { return int(im.raw.DirectoryIndex()) }

// Directory is the theme-relative directory holding the image.
func (im Image) Directory() string { return im.dir.String() }

func (im Image) Flags() Flags { return im.raw.Flags() }

// HasData reports whether the image points at an image-data block, whether
// or not that block decodes.
func (im Image) HasData() bool { return !im.raw.Data().IsNull() }

// Data returns the image's embedded data block, if present and decodable.
func (im Image) Data() (ImageData, bool) {
	off := im.raw.Data()
	if off.IsNull() {
		return ImageData{}, false
	}
	raw, err := off.Resolve(im.c.buf)
	if err != nil {
		return ImageData{}, false
	}
	return ImageData{c: im.c, raw: raw}, true
}

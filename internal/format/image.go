package format

import (
	"fmt"
	"strings"
)

// ImageList is n_images (u32) followed by n_images 8-byte Image records.
type ImageList struct {
	raw []byte
}

func (ImageList) decodeAt(b []byte, off int) (ImageList, error) {
	raw, err := list(b, off, ImageSize, "image list")
	if err != nil {
		return ImageList{}, err
	}
	return ImageList{raw: raw}, nil
}

func (l ImageList) Len() uint32 { return listCount(l.raw) }

// At returns image i, or ok = false when i is not below Len.
func (l ImageList) At(i uint32) (Image, bool) {
	e, ok := element(l.raw, i, ImageSize)
	if !ok {
		return Image{}, false
	}
	return Image{raw: e}, true
}

// Image describes one rendition of an icon in one theme directory.
type Image struct {
	raw []byte
}

// DirectoryIndex is a position in the directory list, not a byte offset.
func (im Image) DirectoryIndex() uint16 { return u16(im.raw, ImageDirectoryIndexOffset) }

func (im Image) Flags() Flags { return Flags(u16(im.raw, ImageFlagsOffset)) }

// Data points at optional embedded image data; NullOffset when absent.
func (im Image) Data() Offset[ImageData] {
	return Offset[ImageData](u32(im.raw, ImageDataOffset))
}

// Flags records which files exist for an image.
type Flags uint16

const (
	HasSuffixXPM Flags = 1 << iota
	HasSuffixSVG
	HasSuffixPNG
	HasIconFile
)

func (f Flags) HasSuffixXPM() bool { return f&HasSuffixXPM != 0 }
func (f Flags) HasSuffixSVG() bool { return f&HasSuffixSVG != 0 }
func (f Flags) HasSuffixPNG() bool { return f&HasSuffixPNG != 0 }
func (f Flags) HasIconFile() bool  { return f&HasIconFile != 0 }

// Suffixes returns the file suffixes present, in the order GTK probes them.
func (f Flags) Suffixes() []string {
	var out []string
	if f.HasSuffixPNG() {
		out = append(out, ".png")
	}
	if f.HasSuffixSVG() {
		out = append(out, ".svg")
	}
	if f.HasSuffixXPM() {
		out = append(out, ".xpm")
	}
	return out
}

func (f Flags) String() string {
	var parts []string
	if f.HasSuffixXPM() {
		parts = append(parts, "xpm")
	}
	if f.HasSuffixSVG() {
		parts = append(parts, "svg")
	}
	if f.HasSuffixPNG() {
		parts = append(parts, "png")
	}
	if f.HasIconFile() {
		parts = append(parts, "icon")
	}
	if rest := f &^ (HasSuffixXPM | HasSuffixSVG | HasSuffixPNG | HasIconFile); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint16(rest)))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

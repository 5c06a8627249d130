package cache

import (
	"iter"

	"golang.org/x/text/language"

	"github.com/joshuapare/iconcache/internal/format"
)

// ImageData is the optional block attached to an image. Pixel payloads are
// returned undecoded.
type ImageData struct {
	c   *Cache
	raw format.ImageData
}

// PixelData returns the buffer from the pixel-data offset to its end.
// The format records no bound, so callers limit it with PixelDataLength.
func (d ImageData) PixelData() ([]byte, bool) {
	off := d.raw.PixelData()
	if off.IsNull() {
		return nil, false
	}
	o, err := off.Resolve(d.c.buf)
	if err != nil {
		return nil, false
	}
	return o.Bytes(), true
}

// PixelDataType returns the offset of the pixel type tag. The tag itself
// is not read.
func (d ImageData) PixelDataType() uint32 { return uint32(d.raw.PixelDataType()) }

// PixelDataLength returns the offset of the pixel length tag. The tag
// itself is not read.
func (d ImageData) PixelDataLength() uint32 { return uint32(d.raw.PixelDataLength()) }

func (d ImageData) HasMetaData() bool { return !d.raw.MetaData().IsNull() }

func (d ImageData) MetaData() (MetaData, bool) {
	raw, err := d.raw.MetaData().Resolve(d.c.buf)
	if err != nil {
		return MetaData{}, false
	}
	return MetaData{c: d.c, raw: raw}, true
}

// MetaData holds the extras copied from an .icon file.
type MetaData struct {
	c   *Cache
	raw format.MetaData
}

// Rect is an embedded text rectangle.
type Rect struct {
	X0, Y0, X1, Y1 uint16
}

type Point struct {
	X, Y uint16
}

func (m MetaData) EmbeddedRect() (Rect, bool) {
	r, err := m.raw.EmbeddedRect().Resolve(m.c.buf)
	if err != nil {
		return Rect{}, false
	}
	return Rect{X0: r.X0(), Y0: r.Y0(), X1: r.X1(), Y1: r.Y1()}, true
}

func (m MetaData) AttachPoints() (AttachPoints, bool) {
	l, err := m.raw.AttachPoints().Resolve(m.c.buf)
	if err != nil {
		return AttachPoints{}, false
	}
	return AttachPoints{raw: l}, true
}

func (m MetaData) DisplayNames() (DisplayNames, bool) {
	l, err := m.raw.DisplayNames().Resolve(m.c.buf)
	if err != nil {
		return DisplayNames{}, false
	}
	return DisplayNames{c: m.c, raw: l}, true
}

// AttachPoints lists the points where emblems may be attached.
type AttachPoints struct {
	raw format.AttachPointList
}

func (a AttachPoints) Len() int { return int(a.raw.Len()) }

func (a AttachPoints) At(i int) (Point, bool) {
	if i < 0 || i >= a.Len() {
		return Point{}, false
	}
	x, y, ok := a.raw.At(uint32(i))
	if !ok {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

func (a AttachPoints) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := range a.Len() {
			p, ok := a.At(i)
			if !ok {
				return
			}
			if !yield(p) {
				return
			}
		}
	}
}

// DisplayName is one localized name of an icon.
type DisplayName struct {
	Lang string
	Name string
}

// Tag parses Lang as a BCP 47 language tag. Locale suffixes such as
// "de_DE" are accepted with the underscore normalised.
func (n DisplayName) Tag() (language.Tag, error) {
	return language.Parse(normaliseLang(n.Lang))
}

func normaliseLang(s string) string {
	// Drop a POSIX codeset or modifier ("sr_RS.UTF-8@latin").
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == '@' {
			s = s[:i]
			break
		}
	}
	b := []byte(s)
	for i, ch := range b {
		if ch == '_' {
			b[i] = '-'
		}
	}
	return string(b)
}

// DisplayNames is the list of localized names in a MetaData block.
type DisplayNames struct {
	c   *Cache
	raw format.DisplayNameList
}

func (d DisplayNames) Len() int { return int(d.raw.Len()) }

// At returns entry i; ok is false when either string fails to decode.
func (d DisplayNames) At(i int) (DisplayName, bool) {
	if i < 0 || i >= d.Len() {
		return DisplayName{}, false
	}
	langOff, nameOff, ok := d.raw.At(uint32(i))
	if !ok {
		return DisplayName{}, false
	}
	lang, err := langOff.Resolve(d.c.buf)
	if err != nil {
		return DisplayName{}, false
	}
	name, err := nameOff.Resolve(d.c.buf)
	if err != nil {
		return DisplayName{}, false
	}
	return DisplayName{Lang: lang.String(), Name: name.String()}, true
}

// All yields the decodable entries in list order.
func (d DisplayNames) All() iter.Seq[DisplayName] {
	return func(yield func(DisplayName) bool) {
		for i := range d.Len() {
			n, ok := d.At(i)
			if !ok {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Match picks the display name whose language best fits prefs. Entries
// whose language does not parse are ignored.
func (d DisplayNames) Match(prefs ...language.Tag) (DisplayName, bool) {
	var (
		names []DisplayName
		tags  []language.Tag
	)
	for n := range d.All() {
		tag, err := n.Tag()
		if err != nil {
			continue
		}
		names = append(names, n)
		tags = append(tags, tag)
	}
	if len(tags) == 0 || len(prefs) == 0 {
		return DisplayName{}, false
	}
	_, idx, conf := language.NewMatcher(tags).Match(prefs...)
	if conf == language.No {
		return DisplayName{}, false
	}
	return names[idx], true
}

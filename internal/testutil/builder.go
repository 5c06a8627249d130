// Package testutil builds icon-theme caches for tests. The builder only emits
// the subset of the format the decoder reads; it is not a replacement for
// gtk-update-icon-cache.
package testutil

import (
	"fmt"
	"sort"

	"github.com/joshuapare/iconcache/internal/buf"
	"github.com/joshuapare/iconcache/internal/format"
)

// Theme describes the cache to build.
type Theme struct {
	Buckets      uint32
	MinorVersion uint16
	Directories  []string
	Icons        []Icon

	// DirectoryListOffset pins the directory list to a fixed file offset,
	// padding with zeros. Zero places it right after the directory strings.
	DirectoryListOffset uint32

	// ZeroEmptyBuckets writes 0 instead of 0xFFFFFFFF into unused buckets.
	ZeroEmptyBuckets bool
}

// Icon is one named icon. Bucket, when set, overrides the hashed bucket.
type Icon struct {
	Name   string
	Images []Image
	Bucket *uint32
}

type Image struct {
	Dir   uint16
	Flags format.Flags
	Data  *ImageData
}

// ImageData is written as the four-offset block; nil fields produce null offsets.
type ImageData struct {
	Pixels      []byte
	PixelType   []byte
	PixelLength []byte
	Meta        *MetaData
}

type MetaData struct {
	Rect         *[4]uint16
	AttachPoints [][2]uint16
	DisplayNames [][2]string // {lang, name}
}

// Layout records where the builder placed things.
type Layout struct {
	HashTable     uint32
	DirectoryList uint32
	// Icons[i] is the record offset of Theme.Icons[i].
	Icons []uint32
	// ImageLists[i] is the image list offset of Theme.Icons[i].
	ImageLists []uint32
}

type writer struct {
	b []byte
}

func (w *writer) pos() uint32 { return uint32(len(w.b)) }

func (w *writer) reserve(n int) uint32 {
	at := w.pos()
	w.b = append(w.b, make([]byte, n)...)
	return at
}

func (w *writer) align4() {
	for len(w.b)%4 != 0 {
		w.b = append(w.b, 0)
	}
}

func (w *writer) put16(at uint32, v uint16) { buf.PutU16BE(w.b, int(at), v) }
func (w *writer) put32(at uint32, v uint32) { buf.PutU32BE(w.b, int(at), v) }

func (w *writer) cstring(s string) uint32 {
	at := w.pos()
	w.b = append(w.b, s...)
	w.b = append(w.b, 0)
	w.align4()
	return at
}

func (w *writer) blob(p []byte) uint32 {
	if p == nil {
		return format.NullOffset
	}
	at := w.pos()
	w.b = append(w.b, p...)
	w.align4()
	return at
}

// Build encodes t.
func Build(t Theme) ([]byte, Layout, error) {
	if t.Buckets == 0 {
		return nil, Layout{}, fmt.Errorf("testutil: theme needs at least one bucket")
	}
	w := &writer{}
	lay := Layout{
		Icons:      make([]uint32, len(t.Icons)),
		ImageLists: make([]uint32, len(t.Icons)),
	}

	w.reserve(format.HeaderSize)
	lay.HashTable = w.reserve(format.CountSize + int(t.Buckets)*format.OffsetSize)
	w.put32(lay.HashTable, t.Buckets)

	chains := make(map[uint32][]int)
	for i, ic := range t.Icons {
		bucket := format.IconHash([]byte(ic.Name)) % t.Buckets
		if ic.Bucket != nil {
			bucket = *ic.Bucket % t.Buckets
		}
		chains[bucket] = append(chains[bucket], i)
	}
	buckets := make([]uint32, 0, len(chains))
	for b := range chains {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i] < buckets[j] })

	order := make([]int, 0, len(t.Icons))
	for _, b := range buckets {
		for _, i := range chains[b] {
			lay.Icons[i] = w.reserve(format.IconSize)
			order = append(order, i)
		}
	}

	empty := uint32(format.InvalidOffset)
	if t.ZeroEmptyBuckets {
		empty = format.NullOffset
	}
	for b := uint32(0); b < t.Buckets; b++ {
		slot := lay.HashTable + format.CountSize + b*format.OffsetSize
		chain := chains[b]
		if len(chain) == 0 {
			w.put32(slot, empty)
			continue
		}
		w.put32(slot, lay.Icons[chain[0]])
		for k, i := range chain {
			next := uint32(format.InvalidOffset)
			if k+1 < len(chain) {
				next = lay.Icons[chain[k+1]]
			}
			w.put32(lay.Icons[i]+format.IconChainOffset, next)
		}
	}

	for _, i := range order {
		ic := t.Icons[i]
		rec := lay.Icons[i]
		w.put32(rec+format.IconNameOffset, w.cstring(ic.Name))
		lay.ImageLists[i] = w.imageList(ic.Images)
		w.put32(rec+format.IconImageListOffset, lay.ImageLists[i])
	}

	dirOffsets := make([]uint32, len(t.Directories))
	for i, d := range t.Directories {
		dirOffsets[i] = w.cstring(d)
	}
	if t.DirectoryListOffset != 0 {
		if w.pos() > t.DirectoryListOffset {
			return nil, Layout{}, fmt.Errorf(
				"testutil: directory list offset %d already passed (at %d)",
				t.DirectoryListOffset, w.pos(),
			)
		}
		w.reserve(int(t.DirectoryListOffset - w.pos()))
	}
	lay.DirectoryList = w.reserve(format.CountSize + len(dirOffsets)*format.OffsetSize)
	w.put32(lay.DirectoryList, uint32(len(dirOffsets)))
	for i, off := range dirOffsets {
		w.put32(lay.DirectoryList+format.CountSize+uint32(i)*format.OffsetSize, off)
	}

	w.put16(format.HeaderMajorOffset, format.SupportedMajorVersion)
	w.put16(format.HeaderMinorOffset, t.MinorVersion)
	w.put32(format.HeaderHashOffset, lay.HashTable)
	w.put32(format.HeaderDirListOffset, lay.DirectoryList)
	return w.b, lay, nil
}

func (w *writer) imageList(images []Image) uint32 {
	at := w.reserve(format.CountSize + len(images)*format.ImageSize)
	w.put32(at, uint32(len(images)))
	for i, im := range images {
		rec := at + format.CountSize + uint32(i)*format.ImageSize
		w.put16(rec+format.ImageDirectoryIndexOffset, im.Dir)
		w.put16(rec+format.ImageFlagsOffset, uint16(im.Flags))
		if im.Data != nil {
			w.put32(rec+format.ImageDataOffset, w.imageData(im.Data))
		}
	}
	return at
}

func (w *writer) imageData(d *ImageData) uint32 {
	at := w.reserve(format.ImageDataSize)
	w.put32(at+format.ImageDataPixelDataOffset, w.blob(d.Pixels))
	w.put32(at+format.ImageDataPixelTypeOffset, w.blob(d.PixelType))
	w.put32(at+format.ImageDataPixelLengthOffset, w.blob(d.PixelLength))
	if d.Meta != nil {
		w.put32(at+format.ImageDataMetaDataOffset, w.metaData(d.Meta))
	}
	return at
}

func (w *writer) metaData(m *MetaData) uint32 {
	at := w.reserve(format.MetaDataSize)
	if m.Rect != nil {
		r := w.reserve(format.EmbeddedRectSize)
		for i, v := range m.Rect {
			w.put16(r+uint32(i)*2, v)
		}
		w.put32(at+format.MetaDataEmbeddedRectOffset, r)
	}
	if m.AttachPoints != nil {
		l := w.reserve(format.CountSize + len(m.AttachPoints)*format.AttachPointSize)
		w.put32(l, uint32(len(m.AttachPoints)))
		for i, p := range m.AttachPoints {
			e := l + format.CountSize + uint32(i)*format.AttachPointSize
			w.put16(e, p[0])
			w.put16(e+2, p[1])
		}
		w.put32(at+format.MetaDataAttachPointListOffset, l)
	}
	if m.DisplayNames != nil {
		l := w.reserve(format.CountSize + len(m.DisplayNames)*format.DisplayNameSize)
		w.put32(l, uint32(len(m.DisplayNames)))
		for i, dn := range m.DisplayNames {
			e := l + format.CountSize + uint32(i)*format.DisplayNameSize
			w.put32(e, w.cstring(dn[0]))
			w.put32(e+4, w.cstring(dn[1]))
		}
		w.put32(at+format.MetaDataDisplayNameListOffset, l)
	}
	return at
}

// MustBuild is Build for fixtures known to be valid.
func MustBuild(t Theme) ([]byte, Layout) {
	b, lay, err := Build(t)
	if err != nil {
		panic(err)
	}
	return b, lay
}

// BucketPtr is a convenience for Icon.Bucket.
func BucketPtr(b uint32) *uint32 { return &b }

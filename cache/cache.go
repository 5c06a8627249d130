package cache

import (
	"iter"

	"github.com/joshuapare/iconcache/internal/format"
)

// Cache is a parsed icon-theme cache. It holds the caller's buffer, which
// must stay unchanged for as long as the Cache or any view derived from it
// is in use.
type Cache struct {
	buf    []byte
	header format.Header
	table  format.HashTable
	dirs   format.DirectoryList
}

// HeaderInfo is the decoded file header.
type HeaderInfo struct {
	MajorVersion        uint16 `json:"major_version"`
	MinorVersion        uint16 `json:"minor_version"`
	HashOffset          uint32 `json:"hash_offset"`
	DirectoryListOffset uint32 `json:"directory_list_offset"`
}

// Parse validates the header, hash table and directory list of b.
func Parse(b []byte) (*Cache, error) {
	header, err := format.ParseHeader(b)
	if err != nil {
		return nil, wrapDecodeErr("parse header", err)
	}
	table, err := header.HashTable().Resolve(b)
	if err != nil {
		return nil, wrapDecodeErr("parse hash table", err)
	}
	dirs, err := header.DirectoryList().Resolve(b)
	if err != nil {
		return nil, wrapDecodeErr("parse directory list", err)
	}
	return &Cache{buf: b, header: header, table: table, dirs: dirs}, nil
}

// Bytes returns the buffer the cache was parsed from.
func (c *Cache) Bytes() []byte { return c.buf }

func (c *Cache) Header() HeaderInfo {
	return HeaderInfo{
		MajorVersion:        c.header.MajorVersion(),
		MinorVersion:        c.header.MinorVersion(),
		HashOffset:          uint32(c.header.HashTable()),
		DirectoryListOffset: uint32(c.header.DirectoryList()),
	}
}

// BucketCount returns the number of hash buckets; always at least 1.
func (c *Cache) BucketCount() uint32 { return c.table.Len() }

// Bucket returns the bucket index name hashes to.
func (c *Cache) Bucket(name string) uint32 { return c.table.BucketFor([]byte(name)) }

// Lookup returns the icon called name. ok is false when the theme has no
// such icon or its record does not decode.
func (c *Cache) Lookup(name string) (Icon, bool) {
	return c.LookupBytes([]byte(name))
}

// LookupBytes is Lookup for a name held as bytes.
func (c *Cache) LookupBytes(name []byte) (Icon, bool) {
	off, raw, ok := format.Lookup(c.buf, c.table, name)
	if !ok {
		return Icon{}, false
	}
	return c.icon(off, raw)
}

// BucketChain returns the first icon in bucket i, or ok = false when i is
// out of range, the bucket is empty, or its head does not decode.
func (c *Cache) BucketChain(i uint32) (Icon, bool) {
	head, ok := c.table.Bucket(i)
	if !ok || head.IsNull() {
		return Icon{}, false
	}
	raw, err := head.Resolve(c.buf)
	if err != nil {
		return Icon{}, false
	}
	return c.icon(head, raw)
}

// Chain yields the decodable icons of bucket i in chain order. It stops
// when the chain loops back to its head.
func (c *Cache) Chain(i uint32) iter.Seq[Icon] {
	return func(yield func(Icon) bool) {
		head, ok := c.table.Bucket(i)
		if !ok {
			return
		}
		first := true
		for off, raw := range format.Chain(c.buf, head) {
			if off == head && !first {
				return
			}
			first = false
			icon, ok := c.icon(off, raw)
			if !ok {
				continue
			}
			if !yield(icon) {
				return
			}
		}
	}
}

// All yields every decodable icon, bucket by bucket and in chain order
// within a bucket. Each call walks the table anew.
func (c *Cache) All() iter.Seq[Icon] {
	return func(yield func(Icon) bool) {
		for i := uint32(0); i < c.table.Len(); i++ {
			for icon := range c.Chain(i) {
				if !yield(icon) {
					return
				}
			}
		}
	}
}

// Len counts the icons All yields.
func (c *Cache) Len() int {
	n := 0
	for range c.All() {
		n++
	}
	return n
}

// DirectoryCount returns the declared number of theme directories.
func (c *Cache) DirectoryCount() int { return int(c.dirs.Len()) }

// Directory returns theme directory i, relative to the theme root.
func (c *Cache) Directory(i int) (string, bool) {
	if i < 0 || i >= c.DirectoryCount() {
		return "", false
	}
	p, err := c.dirs.Path(c.buf, uint32(i))
	if err != nil {
		return "", false
	}
	return p.String(), true
}

// Directories yields the decodable theme directories in list order.
func (c *Cache) Directories() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range c.DirectoryCount() {
			d, ok := c.Directory(i)
			if !ok {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

func (c *Cache) icon(off format.Offset[format.Icon], raw format.Icon) (Icon, bool) {
	name, err := raw.Name().Resolve(c.buf)
	if err != nil {
		return Icon{}, false
	}
	images, err := raw.ImageList().Resolve(c.buf)
	if err != nil {
		return Icon{}, false
	}
	return Icon{c: c, offset: uint32(off), name: name, images: images}, true
}

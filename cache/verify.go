package cache

import (
	"fmt"

	"github.com/joshuapare/iconcache/internal/format"
)

// Issue is one problem found by Verify.
type Issue struct {
	Offset    uint32 `json:"offset"`
	Structure string `json:"structure"`
	Message   string `json:"message"`
}

// Report summarises a full walk of a cache. Counts cover everything the
// walk could reach; records it could not reach are not counted.
type Report struct {
	Buckets      uint32 `json:"buckets"`
	EmptyBuckets uint32 `json:"empty_buckets"`
	LongestChain int    `json:"longest_chain"`

	Records        int `json:"records"`
	Icons          int `json:"icons"`
	BadNames       int `json:"bad_names"`
	BadImageLists  int `json:"bad_image_lists"`
	Images         int `json:"images"`
	BadImages      int `json:"bad_images"`
	ImageData      int `json:"image_data"`
	BadImageData   int `json:"bad_image_data"`
	MetaData       int `json:"meta_data"`
	BadMetaData    int `json:"bad_meta_data"`
	Directories    int `json:"directories"`
	BadDirectories int `json:"bad_directories"`
	BrokenChains   int `json:"broken_chains"`
	OverlongChains int `json:"overlong_chains"`

	Issues []Issue `json:"issues,omitempty"`
}

// OK reports whether the walk found no problems.
func (r *Report) OK() bool { return len(r.Issues) == 0 }

func (r *Report) add(off uint32, structure, msg string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Offset:    off,
		Structure: structure,
		Message:   fmt.Sprintf(msg, args...),
	})
}

// Verify walks every bucket, chain, image and directory entry of c and
// records what fails to decode. It never stops at the first problem.
func (c *Cache) Verify() *Report {
	r := &Report{Buckets: c.table.Len()}

	for i := range c.DirectoryCount() {
		r.Directories++
		if _, err := c.dirs.Path(c.buf, uint32(i)); err != nil {
			r.BadDirectories++
			r.add(uint32(c.header.DirectoryList()), "directory", "entry %d: %v", i, err)
		}
	}

	for i := uint32(0); i < c.table.Len(); i++ {
		head, _ := c.table.Bucket(i)
		if head.IsNull() {
			r.EmptyBuckets++
			continue
		}
		hops := 0
		var last format.Offset[format.Icon]
		end := format.WalkChain(c.buf, head, func(off format.Offset[format.Icon], raw format.Icon) bool {
			hops++
			last = off
			r.Records++
			c.verifyIcon(r, off, raw)
			return true
		})
		if hops > r.LongestChain {
			r.LongestChain = hops
		}
		switch end {
		case format.ChainBroken:
			r.BrokenChains++
			next := head
			if hops > 0 {
				// last decoded, so its chain pointer is the one that failed
				if icon, err := last.Resolve(c.buf); err == nil {
					next = icon.Chain()
				}
			}
			r.add(uint32(next), "chain", "bucket %d: icon offset does not resolve", i)
		case format.ChainTooLong:
			r.OverlongChains++
			r.add(uint32(head), "chain", "bucket %d: chain exceeds the %d hop bound", i, format.MaxChainHops(c.buf))
		}
	}
	return r
}

func (c *Cache) verifyIcon(r *Report, off format.Offset[format.Icon], raw format.Icon) {
	ok := true
	if _, err := raw.Name().Resolve(c.buf); err != nil {
		r.BadNames++
		r.add(uint32(off), "icon", "name: %v", err)
		ok = false
	}
	images, err := raw.ImageList().Resolve(c.buf)
	if err != nil {
		r.BadImageLists++
		r.add(uint32(off), "icon", "image list: %v", err)
		return
	}
	if ok {
		r.Icons++
	}
	for j := uint32(0); j < images.Len(); j++ {
		im, _ := images.At(j)
		r.Images++
		if _, err := c.dirs.Path(c.buf, uint32(im.DirectoryIndex())); err != nil {
			r.BadImages++
			r.add(uint32(raw.ImageList()), "image", "image %d directory %d: %v", j, im.DirectoryIndex(), err)
			continue
		}
		if im.Data().IsNull() {
			continue
		}
		r.ImageData++
		data, err := im.Data().Resolve(c.buf)
		if err != nil {
			r.BadImageData++
			r.add(uint32(im.Data()), "image data", "%v", err)
			continue
		}
		if data.MetaData().IsNull() {
			continue
		}
		r.MetaData++
		if _, err := data.MetaData().Resolve(c.buf); err != nil {
			r.BadMetaData++
			r.add(uint32(data.MetaData()), "meta data", "%v", err)
		}
	}
}

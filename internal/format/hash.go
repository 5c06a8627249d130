package format

import "fmt"

// HashTable is the bucket array: n_buckets (u32) followed by n_buckets icon
// offsets. An empty bucket holds either null sentinel.
type HashTable struct {
	raw []byte
}

func (HashTable) decodeAt(b []byte, off int) (HashTable, error) {
	raw, err := list(b, off, OffsetSize, "hash table")
	if err != nil {
		return HashTable{}, err
	}
	if listCount(raw) == 0 {
		return HashTable{}, fmt.Errorf("hash table at 0x%x: %w", off, ErrNoBuckets)
	}
	return HashTable{raw: raw}, nil
}

// Len returns the number of buckets.
func (t HashTable) Len() uint32 { return listCount(t.raw) }

// Bucket returns the chain head stored in bucket i. ok is false when i is
// not below Len.
func (t HashTable) Bucket(i uint32) (head Offset[Icon], ok bool) {
	e, ok := element(t.raw, i, OffsetSize)
	if !ok {
		return 0, false
	}
	return Offset[Icon](u32(e, 0)), true
}

// BucketFor returns the bucket index a name hashes to.
func (t HashTable) BucketFor(name []byte) uint32 {
	return IconHash(name) % t.Len()
}

// IconHash is the string hash gtk-update-icon-cache uses to place names in
// buckets: h = h*31 + p, seeded with the first byte and wrapping at 32 bits.
// The empty name hashes to 0.
func IconHash(name []byte) uint32 {
	if len(name) == 0 {
		return 0
	}
	h := uint32(name[0])
	for _, p := range name[1:] {
		h = (h << 5) - h + uint32(p)
	}
	return h
}

package format

import (
	"bytes"
	"iter"
)

// ChainEnd reports why a chain walk stopped.
type ChainEnd int

const (
	// ChainTerminated means a null chain offset was reached.
	ChainTerminated ChainEnd = iota
	// ChainBroken means a chain offset did not resolve to an icon record.
	ChainBroken
	// ChainTooLong means the walk exceeded the hop bound. Only a cycle or
	// overlapping icon records can produce a chain that long.
	ChainTooLong
	// ChainStopped means the visitor asked to stop.
	ChainStopped
)

func (e ChainEnd) String() string {
	switch e {
	case ChainTerminated:
		return "terminated"
	case ChainBroken:
		return "broken"
	case ChainTooLong:
		return "too long"
	case ChainStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// MaxChainHops bounds chain walks over b: one hop per IconSize bytes of
// buffer, plus one.
func MaxChainHops(b []byte) int {
	return len(b)/IconSize + 1
}

// WalkChain calls fn for every icon reachable from head, in chain order.
func WalkChain(b []byte, head Offset[Icon], fn func(Offset[Icon], Icon) bool) ChainEnd {
	limit := MaxChainHops(b)
	cur := head
	for hops := 0; !cur.IsNull(); hops++ {
		if hops >= limit {
			return ChainTooLong
		}
		icon, err := cur.Resolve(b)
		if err != nil {
			return ChainBroken
		}
		if !fn(cur, icon) {
			return ChainStopped
		}
		cur = icon.Chain()
	}
	return ChainTerminated
}

// Chain returns the icons reachable from head. Iteration ends silently at a
// broken or overlong chain.
func Chain(b []byte, head Offset[Icon]) iter.Seq2[Offset[Icon], Icon] {
	return func(yield func(Offset[Icon], Icon) bool) {
		WalkChain(b, head, yield)
	}
}

// Lookup finds the first icon named name in the bucket name hashes to.
// Icons whose names do not decode are skipped.
func Lookup(b []byte, t HashTable, name []byte) (Offset[Icon], Icon, bool) {
	head, ok := t.Bucket(t.BucketFor(name))
	if !ok {
		return 0, Icon{}, false
	}
	var (
		foundOff Offset[Icon]
		found    Icon
		hit      bool
	)
	WalkChain(b, head, func(off Offset[Icon], icon Icon) bool {
		s, err := icon.Name().Resolve(b)
		if err != nil {
			return true
		}
		if bytes.Equal(s.Bytes(), name) {
			foundOff, found, hit = off, icon, true
			return false
		}
		return true
	})
	return foundOff, found, hit
}

package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/iconcache/internal/buf"
	"github.com/joshuapare/iconcache/internal/format"
	"github.com/joshuapare/iconcache/internal/testutil"
)

func table(t *testing.T, b []byte) format.HashTable {
	t.Helper()
	h, err := format.ParseHeader(b)
	require.NoError(t, err)
	tbl, err := h.HashTable().Resolve(b)
	require.NoError(t, err)
	return tbl
}

// collidingTheme puts three icons into bucket 0 of a one-bucket table.
func collidingTheme() testutil.Theme {
	return testutil.Theme{
		Buckets:     1,
		Directories: []string{"scalable/apps"},
		Icons: []testutil.Icon{
			{Name: "first", Images: []testutil.Image{{Flags: format.HasSuffixSVG}}},
			{Name: "second", Images: []testutil.Image{{Flags: format.HasSuffixPNG}}},
			{Name: "third", Images: []testutil.Image{{Flags: format.HasSuffixXPM}}},
		},
	}
}

func names(t *testing.T, b []byte, head format.Offset[format.Icon]) []string {
	t.Helper()
	var out []string
	for _, icon := range format.Chain(b, head) {
		s, err := icon.Name().Resolve(b)
		require.NoError(t, err)
		out = append(out, s.String())
	}
	return out
}

func TestChain_Order(t *testing.T) {
	b, _ := testutil.MustBuild(collidingTheme())
	tbl := table(t, b)
	head, ok := tbl.Bucket(0)
	require.True(t, ok)
	require.Equal(t, []string{"first", "second", "third"}, names(t, b, head))
}

func TestLookup_FirstMatchWins(t *testing.T) {
	theme := collidingTheme()
	theme.Icons = append(theme.Icons, testutil.Icon{Name: "second"})
	b, lay := testutil.MustBuild(theme)
	tbl := table(t, b)

	off, icon, ok := format.Lookup(b, tbl, []byte("second"))
	require.True(t, ok)
	require.Equal(t, lay.Icons[1], uint32(off))
	l, err := icon.ImageList().Resolve(b)
	require.NoError(t, err)
	require.Equal(t, uint32(1), l.Len())

	_, _, ok = format.Lookup(b, tbl, []byte("fourth"))
	require.False(t, ok)
	_, _, ok = format.Lookup(b, tbl, []byte("secon"))
	require.False(t, ok)
}

func TestLookup_OnlyInspectsHashedBucket(t *testing.T) {
	const buckets = 7
	wrong := (format.IconHash([]byte("mpv")) + 1) % buckets
	b, _ := testutil.MustBuild(testutil.Theme{
		Buckets: buckets,
		Icons:   []testutil.Icon{{Name: "mpv", Bucket: testutil.BucketPtr(wrong)}},
	})
	tbl := table(t, b)
	_, _, ok := format.Lookup(b, tbl, []byte("mpv"))
	require.False(t, ok, "an icon filed under the wrong bucket must not be found")

	head, ok := tbl.Bucket(wrong)
	require.True(t, ok)
	require.Equal(t, []string{"mpv"}, names(t, b, head))
}

func TestLookup_SkipsUndecodableNames(t *testing.T) {
	b, lay := testutil.MustBuild(collidingTheme())
	// Point the first icon's name past the end of the buffer.
	buf.PutU32BE(b, int(lay.Icons[0])+format.IconNameOffset, uint32(len(b)+100))
	tbl := table(t, b)

	_, _, ok := format.Lookup(b, tbl, []byte("third"))
	require.True(t, ok)
	_, _, ok = format.Lookup(b, tbl, []byte("first"))
	require.False(t, ok)
}

func TestWalkChain_Cycle(t *testing.T) {
	b, lay := testutil.MustBuild(collidingTheme())
	// third -> first closes the loop.
	buf.PutU32BE(b, int(lay.Icons[2])+format.IconChainOffset, lay.Icons[0])
	tbl := table(t, b)
	head, _ := tbl.Bucket(0)

	hops := 0
	end := format.WalkChain(b, head, func(format.Offset[format.Icon], format.Icon) bool {
		hops++
		return true
	})
	require.Equal(t, format.ChainTooLong, end)
	require.Equal(t, format.MaxChainHops(b), hops)

	_, _, ok := format.Lookup(b, tbl, []byte("missing"))
	require.False(t, ok, "a cyclic chain must end as not found")
	_, _, ok = format.Lookup(b, tbl, []byte("third"))
	require.True(t, ok)
}

func TestWalkChain_SelfLoop(t *testing.T) {
	b, lay := testutil.MustBuild(testutil.Theme{Buckets: 1, Icons: []testutil.Icon{{Name: "loop"}}})
	buf.PutU32BE(b, int(lay.Icons[0])+format.IconChainOffset, lay.Icons[0])
	head, _ := table(t, b).Bucket(0)
	end := format.WalkChain(b, head, func(format.Offset[format.Icon], format.Icon) bool { return true })
	require.Equal(t, format.ChainTooLong, end)
}

func TestWalkChain_OverlappingRecordsExceedBound(t *testing.T) {
	// Icon records at every 4 bytes, each chaining to the next: acyclic, yet
	// far more records than the hop bound allows.
	b := make([]byte, 120)
	for off := 0; off+format.IconSize <= len(b); off += 4 {
		buf.PutU32BE(b, off+format.IconChainOffset, uint32(off+4))
	}
	last := len(b) - format.IconSize
	buf.PutU32BE(b, last+format.IconChainOffset, format.InvalidOffset)

	seen := map[format.Offset[format.Icon]]bool{}
	end := format.WalkChain(b, 4, func(off format.Offset[format.Icon], _ format.Icon) bool {
		require.False(t, seen[off], "offset 0x%x visited twice", uint32(off))
		seen[off] = true
		return true
	})
	require.Equal(t, format.ChainTooLong, end)
	require.Len(t, seen, format.MaxChainHops(b))
}

func TestWalkChain_Broken(t *testing.T) {
	b, lay := testutil.MustBuild(collidingTheme())
	buf.PutU32BE(b, int(lay.Icons[1])+format.IconChainOffset, uint32(len(b)-4))
	head, _ := table(t, b).Bucket(0)

	var seen int
	end := format.WalkChain(b, head, func(format.Offset[format.Icon], format.Icon) bool {
		seen++
		return true
	})
	require.Equal(t, format.ChainBroken, end)
	require.Equal(t, 2, seen)
}

func TestWalkChain_ZeroChainTerminates(t *testing.T) {
	b, lay := testutil.MustBuild(collidingTheme())
	buf.PutU32BE(b, int(lay.Icons[0])+format.IconChainOffset, format.NullOffset)
	head, _ := table(t, b).Bucket(0)
	require.Equal(t, []string{"first"}, names(t, b, head))
}

func TestWalkChain_Stop(t *testing.T) {
	b, _ := testutil.MustBuild(collidingTheme())
	head, _ := table(t, b).Bucket(0)
	end := format.WalkChain(b, head, func(format.Offset[format.Icon], format.Icon) bool { return false })
	require.Equal(t, format.ChainStopped, end)
	require.Equal(t, "stopped", end.String())
}

func TestEmptyBucketSentinels(t *testing.T) {
	for _, zero := range []bool{false, true} {
		b, _ := testutil.MustBuild(testutil.Theme{Buckets: 4, ZeroEmptyBuckets: zero})
		tbl := table(t, b)
		for i := uint32(0); i < tbl.Len(); i++ {
			head, ok := tbl.Bucket(i)
			require.True(t, ok)
			require.True(t, head.IsNull())
			require.Empty(t, names(t, b, head))
		}
	}
}

package cache_test

import (
	"testing"

	"github.com/joshuapare/iconcache/cache"
	"github.com/joshuapare/iconcache/internal/testutil"
)

func BenchmarkParse(b *testing.B) {
	data := testutil.SampleCache()
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for b.Loop() {
		if _, err := cache.Parse(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLookup(b *testing.B) {
	c, err := cache.Parse(testutil.SampleCache())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		if _, ok := c.Lookup("app-281"); !ok {
			b.Fatal("app-281 not found")
		}
	}
}

func BenchmarkAll(b *testing.B) {
	c, err := cache.Parse(testutil.SampleCache())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		n := 0
		for range c.All() {
			n++
		}
		if n != testutil.SampleIconCount {
			b.Fatalf("got %d icons", n)
		}
	}
}

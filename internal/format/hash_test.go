package format

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestIconHash(t *testing.T) {
	cases := []struct {
		name string
		want uint32
	}{
		{"", 0},
		{"a", 'a'},
		{"ab", 'a'*31 + 'b'},
		{"mpv", 108339},
		{"hello world", 1794106052},
	}
	for _, c := range cases {
		if got := IconHash([]byte(c.name)); got != c.want {
			t.Errorf("IconHash(%q) = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestIconHash_Recurrence(t *testing.T) {
	// h(s) = h(s[:-1])*31 + last, modulo 2^32, for every non-empty prefix.
	s := []byte("preferences-other-symbolic-\xff\x80-with-a-long-tail-to-force-wraparound")
	for n := 2; n <= len(s); n++ {
		want := IconHash(s[:n-1])*31 + uint32(s[n-1])
		if got := IconHash(s[:n]); got != want {
			t.Fatalf("prefix %d: got %d want %d", n, got, want)
		}
	}
	if got := IconHash([]byte("preferences-other-symbolic")) % 251; got != 243 {
		t.Fatalf("bucket = %d, want 243", got)
	}
}

func mkTable(slots ...uint32) []byte {
	b := make([]byte, CountSize+len(slots)*OffsetSize)
	binary.BigEndian.PutUint32(b, uint32(len(slots)))
	for i, s := range slots {
		binary.BigEndian.PutUint32(b[CountSize+i*OffsetSize:], s)
	}
	return b
}

func TestHashTable_Decode(t *testing.T) {
	b := mkTable(0x40, InvalidOffset, NullOffset)
	tbl, err := (HashTable{}).decodeAt(b, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tbl.Len() != 3 {
		t.Fatalf("Len = %d, want 3", tbl.Len())
	}
	head, ok := tbl.Bucket(0)
	if !ok || head != 0x40 {
		t.Fatalf("Bucket(0) = 0x%x,%v", uint32(head), ok)
	}
	for _, i := range []uint32{1, 2} {
		head, ok := tbl.Bucket(i)
		if !ok || !head.IsNull() {
			t.Fatalf("Bucket(%d) should be a null slot, got 0x%x,%v", i, uint32(head), ok)
		}
	}
	if _, ok := tbl.Bucket(3); ok {
		t.Fatalf("Bucket(3) must be rejected against the declared count")
	}
	for _, name := range []string{"", "mpv", "firefox", "\xff\xfe"} {
		if got := tbl.BucketFor([]byte(name)); got >= tbl.Len() {
			t.Fatalf("BucketFor(%q) = %d out of range", name, got)
		}
	}
}

func TestHashTable_Errors(t *testing.T) {
	if _, err := (HashTable{}).decodeAt(mkTable(), 0); !errors.Is(err, ErrNoBuckets) {
		t.Fatalf("expected ErrNoBuckets, got %v", err)
	}
	short := mkTable(1, 2, 3)
	if _, err := (HashTable{}).decodeAt(short[:len(short)-1], 0); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	huge := make([]byte, 8)
	binary.BigEndian.PutUint32(huge, 0xFFFFFFFF)
	if _, err := (HashTable{}).decodeAt(huge, 0); err == nil {
		t.Fatalf("count overrunning the buffer must fail")
	}
}

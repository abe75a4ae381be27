package ngdpbuf

import "testing"

func TestBufferGrowthRule(t *testing.T) {
	b := NewBuffer(nil)
	if b.Cap() != 0 {
		t.Fatalf("new buffer Cap() = %d, want 0", b.Cap())
	}

	b.Push('a')
	if b.Cap() < minHeapCapacity {
		t.Errorf("Cap() after first push = %d, want >= %d", b.Cap(), minHeapCapacity)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
	if b.Cap() < b.Len() {
		t.Errorf("Cap() %d < Len() %d", b.Cap(), b.Len())
	}
}

func TestInlinePromotionPreservesContent(t *testing.T) {
	var stack [4]byte
	b := NewInline(nil, stack[:])
	if !b.IsInline() {
		t.Fatal("expected inline buffer")
	}

	b.Append([]byte{1, 2, 3})
	if !b.IsInline() {
		t.Fatal("buffer promoted before overflow")
	}

	// The first push fills the 4-byte inline window; the second overflows
	// it and must promote.
	b.Push(4)
	b.Push(5)

	if b.IsInline() {
		t.Fatal("buffer did not promote to heap storage on overflow")
	}
	if b.Cap() <= 0 {
		t.Errorf("Cap() after promotion = %d, want positive", b.Cap())
	}

	want := []byte{1, 2, 3, 4, 5}
	got := b.Bytes()
	if len(got) != len(want) {
		t.Fatalf("Bytes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bytes()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestAllocGrowthFormula(t *testing.T) {
	b := NewWithCapacity(nil, 8)
	b.Alloc(8) // fill to capacity exactly, no growth yet
	if b.Cap() != 8 {
		t.Fatalf("Cap() = %d, want 8 (no growth expected)", b.Cap())
	}

	b.Alloc(1) // now overflow: want ceil(1.5*8) = 12
	if b.Cap() != 12 {
		t.Errorf("Cap() after overflow = %d, want 12", b.Cap())
	}
}

func TestPopAndRemoveAt(t *testing.T) {
	b := NewBuffer(nil)
	b.Append([]byte{1, 2, 3})

	last := b.Pop()
	if last != 3 {
		t.Errorf("Pop() = %d, want 3", last)
	}
	if b.Len() != 2 {
		t.Errorf("Len() after Pop = %d, want 2", b.Len())
	}

	b.RemoveAt(0)
	if b.Len() != 1 || b.Bytes()[0] != 2 {
		t.Errorf("RemoveAt(0) left %v, want [2]", b.Bytes())
	}
}

func TestSegmentResolution(t *testing.T) {
	b := NewBuffer(nil)
	b.Append([]byte("hello "))
	seg := Segment{Start: 0, End: b.Len()}
	b.Append([]byte("world"))

	v := b.Segment(seg)
	if v.String() != "hello " {
		t.Errorf("Segment resolved to %q, want %q", v.String(), "hello ")
	}
}

func TestDestroyNoopWhenInlineOrEmpty(t *testing.T) {
	empty := NewBuffer(nil)
	empty.Destroy() // must not panic

	var stack [4]byte
	inline := NewInline(nil, stack[:])
	inline.Push('x')
	inline.Destroy() // still inline, must be a no-op-safe path
}

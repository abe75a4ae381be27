// Package ngdpbuf implements the dynamic byte container and non-owning view
// substrate described in §3/§4.2 of the NGDP client design: a growable byte
// buffer that can be backed by heap storage or by a caller-supplied inline
// window, plus deferred (start, end) segments and non-owning byte views
// over stabilized storage.
package ngdpbuf

import "github.com/kestrelforge/ngdpclient/pkg/alloc"

// minHeapCapacity is the smallest capacity a Buffer allocates on first
// overflow from empty, per the growth rule in §3.
const minHeapCapacity = 8

// Buffer is a growable byte array with three storage modes distinguished
// only by the sign and magnitude of capacity, per §3:
//
//   - empty:     no storage, capacity == 0
//   - heap:      capacity > 0, storage owned by the configured Allocator
//   - inline:    capacity < 0, |capacity| is the caller-supplied inline
//     window size; on first overflow the buffer promotes to heap storage,
//     copying the inline bytes, and capacity becomes positive.
//
// The zero value is not usable; construct one with NewBuffer, NewWithCapacity,
// or NewInline.
type Buffer struct {
	storage  []byte
	size     int
	capacity int
	alloc    *alloc.Allocator
}

// NewBuffer returns an empty buffer using a (a nil a selects alloc.Default()).
func NewBuffer(a *alloc.Allocator) *Buffer {
	if a == nil {
		a = alloc.Default()
	}
	return &Buffer{alloc: a}
}

// NewWithCapacity returns an empty buffer pre-allocated with n bytes of heap
// capacity.
func NewWithCapacity(a *alloc.Allocator, n int) *Buffer {
	b := NewBuffer(a)
	if n > 0 {
		b.storage = b.alloc.Allocate(n)
		b.capacity = n
	}
	return b
}

// NewInline returns an empty buffer backed by the caller-supplied inline
// window. inlineStorage's length becomes the inline capacity; the buffer
// promotes to heap storage transparently the first time an Alloc call would
// overflow it.
func NewInline(a *alloc.Allocator, inlineStorage []byte) *Buffer {
	b := NewBuffer(a)
	b.storage = inlineStorage
	b.capacity = -len(inlineStorage)
	return b
}

// Len returns the number of logically initialized bytes.
func (b *Buffer) Len() int { return b.size }

// Cap returns the buffer's current absolute capacity, regardless of whether
// it is heap or inline backed.
func (b *Buffer) Cap() int {
	if b.capacity < 0 {
		return -b.capacity
	}
	return b.capacity
}

// IsInline reports whether the buffer is still backed by inline storage
// (capacity < 0).
func (b *Buffer) IsInline() bool { return b.capacity < 0 }

// Bytes returns the logically valid prefix of the buffer's storage. The
// returned slice aliases the buffer; callers must not retain it across a
// call that may grow the buffer (see Segment for the safe alternative).
func (b *Buffer) Bytes() []byte { return b.storage[:b.size] }

// Alloc grows the buffer by n bytes, returning a slice over the newly
// reserved (uninitialized) region at the tail. Growth follows
// max(size+n, ceil(1.5*capacity)) from a minimum of 8 on first allocation,
// per §3. An inline buffer promotes to heap storage on overflow, copying
// its inline bytes.
func (b *Buffer) Alloc(n int) []byte {
	capAbs := b.Cap()
	if b.size+n > capAbs {
		newCap := capAbs
		if newCap == 0 {
			newCap = minHeapCapacity
		} else {
			newCap = (newCap*3 + 1) / 2
		}
		if newCap < b.size+n {
			newCap = b.size + n
		}

		newStorage := b.alloc.Allocate(newCap)
		copy(newStorage, b.storage[:b.size])
		b.storage = newStorage
		b.capacity = newCap
	}

	start := b.size
	b.size += n
	return b.storage[start:b.size]
}

// AllocZero is like Alloc but zeroes the returned region.
func (b *Buffer) AllocZero(n int) []byte {
	dst := b.Alloc(n)
	for i := range dst {
		dst[i] = 0
	}
	return dst
}

// Append copies src onto the tail of the buffer, growing as needed.
func (b *Buffer) Append(src []byte) {
	dst := b.Alloc(len(src))
	copy(dst, src)
}

// Push appends a single byte.
func (b *Buffer) Push(v byte) {
	dst := b.Alloc(1)
	dst[0] = v
}

// Pop removes and returns the last byte. Panics if the buffer is empty,
// matching the source's assertion discipline.
func (b *Buffer) Pop() byte {
	if b.size == 0 {
		panic("ngdpbuf: Pop on empty buffer")
	}
	b.size--
	return b.storage[b.size]
}

// RemoveAt removes the byte at index by swapping it with the last byte,
// which does not preserve element order (matching the source's
// swap-and-truncate RemoveAt).
func (b *Buffer) RemoveAt(index int) {
	if index >= b.size {
		panic("ngdpbuf: RemoveAt index out of range")
	}
	b.size--
	b.storage[index] = b.storage[b.size]
}

// Reset truncates the buffer to zero length without releasing storage.
func (b *Buffer) Reset() { b.size = 0 }

// Destroy releases heap-backed storage. It is a no-op for empty or
// still-inline buffers, matching §4.2's "no-op if empty or if still
// inline" contract. The buffer must be reinitialized before further use.
func (b *Buffer) Destroy() {
	if b.capacity > 0 {
		b.alloc.Free(b.storage)
	}
	b.storage = nil
	b.size = 0
	b.capacity = 0
}

// View returns a non-owning View over the buffer's current content. Because
// a View aliases the buffer's storage, it is invalidated by any subsequent
// call that grows the buffer — use Segment to defer view construction until
// growth has settled.
func (b *Buffer) View() View { return View(b.storage[:b.size]) }

// Segment resolves a previously recorded Segment into a View over this
// buffer's current storage.
func (b *Buffer) Segment(seg Segment) View {
	if seg.Start < 0 || seg.End < seg.Start || seg.End > b.size {
		panic("ngdpbuf: segment out of range")
	}
	return View(b.storage[seg.Start:seg.End])
}

// CurrentSegment returns a Segment spanning the buffer's entire current
// content, suitable for later resolution via Segment once growth is done.
func (b *Buffer) CurrentSegment() Segment {
	return Segment{Start: 0, End: b.size}
}

package ngdpbuf

// Segment is a deferred view into a Buffer: a pair of byte offsets that is
// resolved into a View only once the backing buffer has stopped
// reallocating. Views pin pointers into the buffer's storage, but the
// buffer may still grow (and thus reallocate) while it is being built up —
// Segment exists to let callers record "this span will be a view" without
// taking a live reference that growth could invalidate.
//
// Invariant: 0 <= Start <= End <= buffer.Len() at the time of resolution.
type Segment struct {
	Start int
	End   int
}

// Len returns End - Start.
func (s Segment) Len() int { return s.End - s.Start }

// Empty reports whether the segment spans zero bytes.
func (s Segment) Empty() bool { return s.Start == s.End }

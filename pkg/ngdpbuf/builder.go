package ngdpbuf

const hexDigits = "0123456789abcdef"

// StringBuilder accumulates text into a *Buffer, offering the small set of
// append operations the remote coordinator and config parsers need: plain
// bytes, characters, hex bytes, and base-10 integers.
type StringBuilder struct {
	buf *Buffer
}

// NewStringBuilder wraps buf for incremental text construction.
func NewStringBuilder(buf *Buffer) *StringBuilder {
	return &StringBuilder{buf: buf}
}

// AppendChar appends a single byte.
func (sb *StringBuilder) AppendChar(c byte) {
	sb.buf.Push(c)
}

// AppendString appends s verbatim.
func (sb *StringBuilder) AppendString(s string) {
	sb.buf.Append([]byte(s))
}

// AppendView appends v verbatim.
func (sb *StringBuilder) AppendView(v View) {
	sb.buf.Append(v)
}

// AppendHexByte appends the two lowercase hex digits representing b.
func (sb *StringBuilder) AppendHexByte(b byte) {
	dst := sb.buf.Alloc(2)
	dst[0] = hexDigits[b>>4]
	dst[1] = hexDigits[b&0x0f]
}

// AppendInt appends the base-10 representation of n.
func (sb *StringBuilder) AppendInt(n int64) {
	if n == 0 {
		sb.AppendChar('0')
		return
	}
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	var digits [20]byte
	i := len(digits)
	for u > 0 {
		i--
		digits[i] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		sb.AppendChar('-')
	}
	sb.buf.Append(digits[i:])
}

// CString ensures a terminating zero byte exists immediately after the
// buffer's current content, without counting it toward Len — for transient
// interop with APIs that expect a NUL-terminated byte slice (e.g. a net/url
// Parse call taking a string built from this buffer's View). The byte at
// Len() is not part of the logical string.
func (sb *StringBuilder) CString() []byte {
	size := sb.buf.size
	sb.buf.Alloc(1)
	sb.buf.storage[size] = 0
	sb.buf.size = size
	return sb.buf.storage[:size]
}

// View returns the builder's current content as a View.
func (sb *StringBuilder) View() View { return sb.buf.View() }

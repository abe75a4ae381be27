package ngdpbuf

import "strings"

// View is a non-owning pair of (pointer, length) over UTF-8 bytes — the
// currency of parsed text throughout this module. Length is measured in
// bytes; View has no codepoint awareness, and equality is byte-wise.
//
// A Go slice already carries a pointer and a length, so View is simply a
// named slice type rather than a separate struct; this keeps the type
// non-owning by construction (slicing never copies).
type View []byte

// NewView wraps s as a View without copying.
func NewView(s []byte) View { return View(s) }

// ViewString wraps a Go string as a View without copying the underlying
// bytes (Go strings are already immutable byte sequences).
func ViewString(s string) View { return View(s) }

// String returns the view's contents as a Go string. This does copy, since
// Go strings are immutable and the view's backing array is not.
func (v View) String() string { return string(v) }

// Len returns the view's length in bytes.
func (v View) Len() int { return len(v) }

// Equals reports byte-wise equality with another view.
func (v View) Equals(other View) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// EqualsString reports byte-wise equality with a Go string, avoiding an
// intermediate View allocation.
func (v View) EqualsString(s string) bool {
	return string(v) == s
}

// Substring returns the view spanning [start, end).
func (v View) Substring(start, end int) View {
	return v[start:end]
}

// IndexByte returns the index of the first occurrence of b, or -1.
func (v View) IndexByte(b byte) int {
	for i := 0; i < len(v); i++ {
		if v[i] == b {
			return i
		}
	}
	return -1
}

// IndexOf returns the index of the first occurrence of sep, or -1.
//
// This intentionally reproduces the source's off-by-one search bound for
// the generic multi-byte path (loop i < len(v)-len(sep) rather than
// i <= len(v)-len(sep)): a separator that ends exactly at the final byte
// of v is not found. This is a documented source quirk (see §9.3), not a
// bug to silently fix. The source special-cases a single-byte separator
// by delegating to IndexByte (original_source/Strings.h's String::Index
// delegates to IndexByte when sep.m_size == 1), which has no such bug —
// the quirk only exists in the generic path, and this mirrors that split
// exactly rather than over-applying the quirk to single-byte separators.
func (v View) IndexOf(sep View) int {
	if len(sep) == 0 {
		return 0
	}
	if len(sep) == 1 {
		return v.IndexByte(sep[0])
	}
	if len(sep) > len(v) {
		return -1
	}
	for i := 0; i < len(v)-len(sep); i++ {
		if v[i:i+len(sep)].Equals(sep) {
			return i
		}
	}
	return -1
}

// Count returns the number of non-overlapping occurrences of sep found by
// repeated IndexOf, inheriting IndexOf's off-by-one quirk at the tail.
func (v View) Count(sep View) int {
	if len(sep) == 0 {
		return 0
	}
	count := 0
	rest := v
	for {
		idx := rest.IndexOf(sep)
		if idx < 0 {
			return count
		}
		count++
		rest = rest[idx+len(sep):]
	}
}

// HasPrefix reports whether v begins with prefix.
func (v View) HasPrefix(prefix View) bool {
	if len(prefix) > len(v) {
		return false
	}
	return v[:len(prefix)].Equals(prefix)
}

// HasPrefixString reports whether v begins with prefix.
func (v View) HasPrefixString(prefix string) bool {
	return v.HasPrefix(ViewString(prefix))
}

// TrimSpace trims leading and trailing ASCII whitespace (space, tab, CR,
// LF, vertical tab, form feed).
func (v View) TrimSpace() View {
	start := 0
	for start < len(v) && isASCIISpace(v[start]) {
		start++
	}
	end := len(v)
	for end > start && isASCIISpace(v[end-1]) {
		end--
	}
	return v[start:end]
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// Split divides v on every non-empty occurrence of sep, returning the
// resulting views in order. An empty sep returns v unsplit.
//
// This reproduces the source's terminal-separator behavior: if v ends
// exactly on a separator, a trailing empty View is still appended (see
// §9.4). Combined with IndexOf's off-by-one quirk, a separator occurrence
// that IndexOf cannot see at the very tail of v will also not trigger a
// split there — callers relying on exhaustive splitting at the boundary
// should be aware of both quirks together.
func (v View) Split(sep View) []View {
	var out []View
	v.splitInto(sep, func(part View) { out = append(out, part) })
	return out
}

// SplitInto is the in-place variant of Split: it appends resulting views to
// dst instead of allocating a new slice, for callers that want to reuse a
// scratch slice across many Split calls.
func (v View) SplitInto(sep View, dst []View) []View {
	v.splitInto(sep, func(part View) { dst = append(dst, part) })
	return dst
}

func (v View) splitInto(sep View, emit func(View)) {
	if len(sep) == 0 {
		emit(v)
		return
	}
	rest := v
	for {
		idx := rest.IndexOf(sep)
		if idx < 0 {
			emit(rest)
			return
		}
		emit(rest[:idx])
		rest = rest[idx+len(sep):]
	}
}

// SplitString is a convenience wrapper taking a Go string separator.
func (v View) SplitString(sep string) []View {
	return v.Split(ViewString(sep))
}

const maxBase = 36

// digitValue returns the numeric value of an ASCII digit/letter in the
// given base, or -1 if it is not a valid digit for that base.
func digitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'z':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 10
	default:
		return -1
	}
}

// ParseUint parses v as an unsigned integer in the given base (2..36).
// Base 16 skips a leading "0x"/"0X" prefix and base 2 skips a leading
// "0b"/"0B" prefix. Parsing stops at the first byte outside the base's
// digit set, returning the value accumulated so far (rather than an
// error) — a character set boundary is not a parse failure in this
// substrate, matching the source's forgiving integer scanner. On
// overflow, the result saturates at the unsigned 32-bit maximum.
func (v View) ParseUint(base int) uint64 {
	if base < 2 || base > maxBase {
		base = 10
	}
	s := []byte(v)
	if base == 16 && len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	} else if base == 2 && len(s) >= 2 && s[0] == '0' && (s[1] == 'b' || s[1] == 'B') {
		s = s[2:]
	}

	const maxUint32 = uint64(^uint32(0))
	var acc uint64
	for _, c := range s {
		d := digitValue(c)
		if d < 0 || d >= base {
			break
		}
		next := acc*uint64(base) + uint64(d)
		if next < acc || next > maxUint32 {
			return maxUint32
		}
		acc = next
	}
	return acc
}

// ParseInt parses v as a signed integer in the given base, honoring a
// leading '-' or '+'. On overflow the result saturates to the signed
// 32-bit extremes; parsing stops (without error) at the first
// out-of-base byte, matching ParseUint.
func (v View) ParseInt(base int) int64 {
	s := []byte(v)
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	const maxInt32 = int64(1<<31 - 1)
	const minInt32 = -int64(1 << 31)

	mag := View(s).ParseUint(base)
	if neg {
		if mag > uint64(maxInt32)+1 {
			return minInt32
		}
		return -int64(mag)
	}
	if mag > uint64(maxInt32) {
		return maxInt32
	}
	return int64(mag)
}

// NFCEqualFold reports whether v and other compare equal, ignoring case
// (strings.EqualFold), after Unicode NFC normalization, used by text-format parsers that need to tolerate region
// tokens supplied in a different (but canonically equivalent) composition.
func (v View) NFCEqualFold(other View) bool {
	return strings.EqualFold(normalizedString(v), normalizedString(other))
}

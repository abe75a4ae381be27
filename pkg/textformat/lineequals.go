package textformat

import "github.com/kestrelforge/ngdpclient/pkg/ngdpbuf"

var equalsSign = ngdpbuf.ViewString("=")

// KeyValue is one "key = value" line of a build/CDN config document.
type KeyValue struct {
	Key   ngdpbuf.View
	Value ngdpbuf.View
}

// OnKeyValue is called once per non-blank, non-comment line of a
// line/equals document.
type OnKeyValue func(kv KeyValue)

// ParseLineEquals walks a "key = value" document one line at a time.
// Blank lines and lines starting with '#' are skipped. Each remaining
// line is split on the first '=' only; both sides are trimmed of
// surrounding whitespace before being passed to onKV. A line with no '='
// is skipped rather than treated as an error — config documents in the
// wild routinely carry stray or informational lines. A line whose '=' is
// its very last byte (an empty-value field, e.g. "patch-config =") still
// yields an empty Value rather than being dropped: IndexOf's single-byte
// separator path has no off-by-one bound (§9.3), so this case is found
// like any other.
func ParseLineEquals(s ngdpbuf.View, onKV OnKeyValue) {
	for _, row := range ParseLineEquals2(s) {
		onKV(row)
	}
}

// ParseLineEquals2 is ParseLineEquals's slice-returning counterpart.
func ParseLineEquals2(s ngdpbuf.View) []KeyValue {
	var out []KeyValue
	for _, line := range s.Split(newline) {
		line = line.TrimSpace()
		if line.Len() == 0 || line[0] == hash {
			continue
		}

		idx := line.IndexOf(equalsSign)
		if idx < 0 {
			continue
		}

		out = append(out, KeyValue{
			Key:   line.Substring(0, idx).TrimSpace(),
			Value: line.Substring(idx+1, line.Len()).TrimSpace(),
		})
	}
	return out
}

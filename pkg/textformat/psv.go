// Package textformat implements the two flat text formats the bootstrap
// endpoints and local config files use: simple "key = value" lines, and
// the pipe-separated-value (PSV) tables served by /cdns and /versions
// (§3, §4.4). Grounded on original_source/Remote.cpp's ParsePSV and
// original_source/Strings.h.
package textformat

import "github.com/kestrelforge/ngdpclient/pkg/ngdpbuf"

var (
	newline = ngdpbuf.ViewString("\n")
	pipe    = ngdpbuf.ViewString("|")
	space   = ngdpbuf.ViewString(" ")
	hash    = byte('#')
	bang    = byte('!')
)

// Row is a single data row of a parsed PSV table, as key/value pairs in
// header-column order.
type Row struct {
	Keys   []ngdpbuf.View
	Values []ngdpbuf.View
}

// Field looks up a value by key name within the row, mirroring the
// linear scan the source performs per onData callback. Returns the zero
// View and false if the key is absent or the row has fewer value columns
// than the header declares for it (a short row, tolerated rather than
// rejected — see ParsePSV).
func (r Row) Field(name string) (ngdpbuf.View, bool) {
	for i, k := range r.Keys {
		if i >= len(r.Values) {
			break
		}
		if k.EqualsString(name) {
			return r.Values[i], true
		}
	}
	return nil, false
}

// OnField is called once per (key, value) pair found in a region-matching
// data row, in header-column order.
type OnField func(key, value ngdpbuf.View)

// ParsePSV walks a PSV document line by line: blank lines and lines
// starting with '#' are skipped, the first remaining line is the header
// (column names, each optionally suffixed with "!type" which is
// truncated away), and every following line whose first pipe-delimited
// column equals region (see regionMatches: case-insensitive, after NFC
// normalization) is a data row whose pipe-separated fields are paired
// positionally with the header's column names and passed to onField. A
// row whose first column merely begins with region (e.g. "us-west" for
// region "us") does not match.
//
// A data row with fewer columns than the header is handled short: onField
// is simply not called for the missing trailing columns, rather than
// erroring (mirrors the source's `values.m_size <= i: break`).
func ParsePSV(s ngdpbuf.View, region ngdpbuf.View, onField OnField) {
	lines := s.Split(newline)

	var keys []ngdpbuf.View
	haveKeys := false

	for _, line := range lines {
		if line.Len() == 0 || line[0] == hash {
			continue
		}

		if !haveKeys {
			keys = line.Split(pipe)
			for i, k := range keys {
				keys[i] = truncateAtBang(k)
			}
			haveKeys = true
			continue
		}

		if !regionMatches(line, region) {
			continue
		}

		values := line.Split(pipe)
		for i, k := range keys {
			if i >= len(values) {
				break
			}
			onField(k, values[i])
		}
	}
}

// ParsePSVRows is ParsePSV's row-collecting counterpart: instead of a
// per-field callback it returns the header names and every matching row
// assembled in full, for callers that want to inspect a row as a whole
// rather than field-by-field.
func ParsePSVRows(s ngdpbuf.View, region ngdpbuf.View) (header []ngdpbuf.View, rows []Row) {
	lines := s.Split(newline)
	haveKeys := false

	for _, line := range lines {
		if line.Len() == 0 || line[0] == hash {
			continue
		}

		if !haveKeys {
			header = line.Split(pipe)
			for i, k := range header {
				header[i] = truncateAtBang(k)
			}
			haveKeys = true
			continue
		}

		if !regionMatches(line, region) {
			continue
		}

		rows = append(rows, Row{Keys: header, Values: line.Split(pipe)})
	}
	return header, rows
}

// regionMatches reports whether line's leading pipe-delimited column names
// region, tolerating the two comparing canonically equivalent but
// differently normalized Unicode strings (see View.NFCEqualFold). The
// source's original comparison is a raw HasPrefix against the whole line;
// this compares the leading column only, which is the byte-prefix the
// source's own row layout guarantees region occupies.
func regionMatches(line, region ngdpbuf.View) bool {
	field := line
	if idx := line.IndexOf(pipe); idx >= 0 {
		field = line.Substring(0, idx)
	}
	return field.NFCEqualFold(region)
}

// SplitSpace splits a space-separated list field (the "Hosts" column of
// the CDNs table is the canonical example).
func SplitSpace(v ngdpbuf.View) []ngdpbuf.View {
	return v.Split(space)
}

// truncateAtBang drops a "!type" suffix from a header column name, e.g.
// "BuildConfig!STRING:0" becomes "BuildConfig". A column with no '!'
// suffix is returned unchanged.
func truncateAtBang(v ngdpbuf.View) ngdpbuf.View {
	idx := v.IndexByte(bang)
	if idx < 0 {
		return v
	}
	return v.Substring(0, idx)
}

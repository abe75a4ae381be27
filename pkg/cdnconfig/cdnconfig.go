// Package cdnconfig parses the CDN config document (the file named by the
// "CDNConfig" key of the /versions table): a line/equals document listing
// the archive and build keys for one build (§4.5). Grounded on
// original_source/Config.cpp's CDNConfig::Init.
package cdnconfig

import (
	"github.com/kestrelforge/ngdpclient/pkg/key"
	"github.com/kestrelforge/ngdpclient/pkg/ngdpbuf"
	"github.com/kestrelforge/ngdpclient/pkg/textformat"
)

// Config is a parsed CDN config document.
type Config struct {
	Archives          []key.ContentKey
	ArchiveGroup      key.ContentKey
	PatchArchives     []key.ContentKey
	PatchArchiveGroup key.ContentKey
	Builds            []key.ContentKey
}

// Parse reads a CDN config document's "key = value" lines. Unknown keys
// are ignored, mirroring the source's if/else-if chain with no default
// error case.
func Parse(doc ngdpbuf.View) Config {
	var c Config
	for _, kv := range textformat.ParseLineEquals2(doc) {
		switch kv.Key.String() {
		case "archives":
			c.Archives = parseKeyList(kv.Value)
		case "archive-group":
			c.ArchiveGroup = parseSingleKey(kv.Value)
		case "patch-archives":
			c.PatchArchives = parseKeyList(kv.Value)
		case "patch-archive-group":
			c.PatchArchiveGroup = parseSingleKey(kv.Value)
		case "builds":
			c.Builds = parseKeyList(kv.Value)
		}
	}
	return c
}

var spaceSep = ngdpbuf.ViewString(" ")

// parseKeyList splits a space-separated list of hex key strings, trimming
// each entry and silently dropping any that end up empty (double spaces,
// trailing separator) rather than treating that as an error.
func parseKeyList(v ngdpbuf.View) []key.ContentKey {
	var out []key.ContentKey
	for _, part := range v.Split(spaceSep) {
		part = part.TrimSpace()
		if part.Len() == 0 {
			continue
		}
		k, err := key.DecodeHex(part)
		if err != nil {
			continue
		}
		out = append(out, k)
	}
	return out
}

// parseSingleKey decodes a single hex key value, returning the zero key on
// a malformed (wrong-length) value rather than erroring — consistent with
// key.DecodeHex's own tolerant handling of junk characters within a
// correctly-sized value (§9.2).
func parseSingleKey(v ngdpbuf.View) key.ContentKey {
	k, err := key.DecodeHex(v)
	if err != nil {
		return key.Zero
	}
	return k
}

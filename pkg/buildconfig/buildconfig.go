// Package buildconfig parses the build config document (named by the
// "BuildConfig" key of the /versions table): a line/equals document
// describing one build's root/install/download/encoding/patch keys and
// metadata (§4.6). Grounded on original_source/Config.cpp's
// BuildConfig::Init.
package buildconfig

import (
	"github.com/kestrelforge/ngdpclient/pkg/key"
	"github.com/kestrelforge/ngdpclient/pkg/ngdpbuf"
	"github.com/kestrelforge/ngdpclient/pkg/textformat"
)

// Config is a parsed build config document.
type Config struct {
	Root             key.ContentKey
	Install          key.ContentKey
	Download         key.ContentKey
	PartialPriority  key.ContentKey
	Patch            key.ContentKey
	PatchConfig      key.ContentKey
	Encoding         [2]key.ContentKey // [0] = content key, [1] = encoded key
	EncodingSize     [2]int64
	InstallSize      int64
	DownloadSize     int64
	PartialPrioritySize int64
	PatchSize        int64
	BuildName               string
	BuildPlaybuildInstaller string
	BuildProduct            string
	BuildUID                string
}

var spaceSep = ngdpbuf.ViewString(" ")

// Parse reads a build config document's "key = value" lines. The
// "encoding" and "encoding-size" fields are each a two-element
// space-separated list; a value with any other element count is rejected
// with ErrMalformedField. This replaces the source's `assert(parts.m_size
// == 2)` with a returned, non-retryable error instead of aborting the
// process (§4.6, §9 REDESIGN).
func Parse(doc ngdpbuf.View) (Config, error) {
	var c Config
	var err error

	for _, kv := range textformat.ParseLineEquals2(doc) {
		switch kv.Key.String() {
		case "root":
			c.Root = parseKey(kv.Value)
		case "install":
			c.Install = parseKey(kv.Value)
		case "download":
			c.Download = parseKey(kv.Value)
		case "partial-priority":
			c.PartialPriority = parseKey(kv.Value)
		case "patch":
			c.Patch = parseKey(kv.Value)
		case "patch-config":
			c.PatchConfig = parseKey(kv.Value)
		case "encoding":
			parts := kv.Value.Split(spaceSep)
			if len(parts) != 2 {
				err = ErrMalformedField
				continue
			}
			c.Encoding[0] = parseKey(parts[0])
			c.Encoding[1] = parseKey(parts[1])
		case "encoding-size":
			parts := kv.Value.Split(spaceSep)
			if len(parts) != 2 {
				err = ErrMalformedField
				continue
			}
			c.EncodingSize[0] = parts[0].ParseInt(10)
			c.EncodingSize[1] = parts[1].ParseInt(10)
		case "install-size":
			c.InstallSize = kv.Value.ParseInt(10)
		case "download-size":
			c.DownloadSize = kv.Value.ParseInt(10)
		case "partial-priority-size":
			c.PartialPrioritySize = kv.Value.ParseInt(10)
		case "patch-size":
			c.PatchSize = kv.Value.ParseInt(10)
		case "build-name":
			c.BuildName = kv.Value.String()
		case "build-playbuild-installer":
			c.BuildPlaybuildInstaller = kv.Value.String()
		case "build-product":
			c.BuildProduct = kv.Value.String()
		case "build-uid":
			c.BuildUID = kv.Value.String()
		}
	}

	return c, err
}

// parseKey decodes a hex key value, returning the zero key on a malformed
// (wrong-length) value rather than erroring the whole document — a single
// bad scalar key field should not prevent reading the rest of the config.
func parseKey(v ngdpbuf.View) key.ContentKey {
	k, err := key.DecodeHex(v)
	if err != nil {
		return key.Zero
	}
	return k
}

// Package remote implements the CDN bootstrap and retrying download
// coordinator (§4.8): fetching the /cdns and /versions manifests, picking
// a CDN host with a deliberately biased rotation rule, constructing
// content-addressed URLs, and driving the retry loop that every download
// entry point shares. Grounded on original_source/Remote.cpp, in the
// error/stats idiom of pkg/content/fetcher.go and errors.go.
package remote

import (
	"context"

	"github.com/kestrelforge/ngdpclient/pkg/alloc"
	"github.com/kestrelforge/ngdpclient/pkg/key"
	"github.com/kestrelforge/ngdpclient/pkg/ngdpbuf"
	"github.com/kestrelforge/ngdpclient/pkg/ngdpstats"
	"github.com/kestrelforge/ngdpclient/pkg/ngdptransport"
	"github.com/kestrelforge/ngdpclient/pkg/textformat"
)

// maxCDNHosts bounds the host list the way the source's fixed
// String[8] array does.
const maxCDNHosts = 8

// Coordinator holds one build's CDN bootstrap state and drives downloads
// against it. A Coordinator is not safe for concurrent use from multiple
// goroutines — the source has no internal locking around host-rotation
// state, and that is preserved rather than retrofitted (§9.6); callers
// needing concurrent downloads should use one Coordinator per goroutine
// or serialize access themselves.
type Coordinator struct {
	url    string
	uid    string
	region string

	cdnPath      string
	cdnHosts     [maxCDNHosts]string
	cdnHostCount int

	cdnHostIndex     int
	nextCDNHostIndex int
	cdnTransferRates [maxCDNHosts]int

	buildConfigKey key.ContentKey
	cdnConfigKey   key.ContentKey
	versionsName   string

	transport  ngdptransport.Downloader
	retryLimit int
	stats      ngdpstats.Sink
	alloc      *alloc.Allocator
}

// Config configures a new Coordinator.
type Config struct {
	// URL is the bootstrap base, e.g. "http://us.patch.example.com/game".
	URL string
	// UID is the product identifier appended to URL when fetching the
	// bootstrap /cdns and /versions documents.
	UID string
	// Region filters PSV rows (§4.4); typically a two-letter region code.
	Region string
	// RetryLimit bounds download attempts per call; <= 0 defaults to 5,
	// matching the source's Init fallback.
	RetryLimit int
	Transport  ngdptransport.Downloader
	Stats      ngdpstats.Sink
	// Allocator backs every allocate-mode download's returned buffer
	// (§4.1); nil defaults to alloc.Default(). Buffers returned from
	// DownloadAllocByURL/DownloadAllocByKey are owned by the caller and
	// must be released through this allocator's Free.
	Allocator *alloc.Allocator
}

// New constructs a Coordinator. It does not perform any network I/O;
// call Bootstrap or LoadSnapshot to populate CDN host and version state.
func New(cfg Config) *Coordinator {
	retryLimit := cfg.RetryLimit
	if retryLimit <= 0 {
		retryLimit = 5
	}
	stats := cfg.Stats
	if stats == nil {
		stats = ngdpstats.Noop
	}
	allocator := cfg.Allocator
	if allocator == nil {
		allocator = alloc.Default()
	}
	return &Coordinator{
		url:        cfg.URL,
		uid:        cfg.UID,
		region:     cfg.Region,
		retryLimit: retryLimit,
		transport:  cfg.Transport,
		stats:      stats,
		alloc:      allocator,
	}
}

// BuildConfigKey returns the content key named by the versions document's
// "BuildConfig" column, populated after Bootstrap or LoadSnapshot.
func (c *Coordinator) BuildConfigKey() key.ContentKey { return c.buildConfigKey }

// CDNConfigKey returns the content key named by the versions document's
// "CDNConfig" column.
func (c *Coordinator) CDNConfigKey() key.ContentKey { return c.cdnConfigKey }

// VersionsName returns the versions document's "VersionsName" column.
func (c *Coordinator) VersionsName() string { return c.versionsName }

// Bootstrap fetches and parses the /cdns and /versions documents under
// URL/UID, populating the coordinator's CDN host list and build/CDN
// config keys. Both fetches go through the same retry-looped,
// stats-emitting download path as content downloads (DownloadAllocByURL),
// matching original_source/Remote.cpp's Bootstrap, which routes both
// requests through DownloadAlloc rather than issuing a bare fetch.
func (c *Coordinator) Bootstrap(ctx context.Context) error {
	base := c.url + "/" + c.uid

	cdnsBody, err := c.DownloadAllocByURL(ctx, base+"/cdns")
	if err == nil {
		c.parseCDNs(ngdpbuf.NewView(cdnsBody))
	}

	versionsBody, err := c.DownloadAllocByURL(ctx, base+"/versions")
	if err != nil {
		return &DownloadError{
			Code:      ErrCodeServerError,
			Message:   "failed to fetch /versions",
			URL:       base + "/versions",
			Retryable: true,
			Cause:     err,
		}
	}
	c.parseVersions(ngdpbuf.NewView(versionsBody))

	return nil
}

func (c *Coordinator) parseCDNs(body ngdpbuf.View) {
	textformat.ParsePSV(body, ngdpbuf.ViewString(c.region), func(k, v ngdpbuf.View) {
		switch k.String() {
		case "Path":
			c.cdnPath = v.String()
		case "Hosts":
			hosts := textformat.SplitSpace(v)
			c.cdnHostCount = 0
			for i, h := range hosts {
				if i >= maxCDNHosts {
					break
				}
				c.cdnHosts[i] = h.String()
				c.cdnHostCount = i + 1
			}
		}
	})
}

func (c *Coordinator) parseVersions(body ngdpbuf.View) {
	textformat.ParsePSV(body, ngdpbuf.ViewString(c.region), func(k, v ngdpbuf.View) {
		switch k.String() {
		case "BuildConfig":
			if parsed, err := key.DecodeHex(v); err == nil {
				c.buildConfigKey = parsed
			}
		case "CDNConfig":
			if parsed, err := key.DecodeHex(v); err == nil {
				c.cdnConfigKey = parsed
			}
		case "VersionsName":
			c.versionsName = v.String()
		}
	})
}

// selectHost applies the host-rotation rule and returns the chosen
// host's index.
//
// This reproduces the source's rotation bias exactly (§9.1): the search
// for the best-rated host only scans indices strictly below the
// *current* cdnHostIndex, not the full host count — so once host 0 has
// ever been selected, hosts past the current index are never considered
// as a reselection candidate regardless of their transfer rate, and only
// nextCDNHostIndex's simple round-robin advance ever reaches them. This
// is a documented quirk, not a bug to silently fix.
func (c *Coordinator) selectHost() int {
	maxTransfer := 0
	bestIdx := c.nextCDNHostIndex
	for i := 0; i < c.cdnHostIndex; i++ {
		if c.cdnTransferRates[i] > maxTransfer {
			bestIdx = i
			maxTransfer = c.cdnTransferRates[i]
		}
	}
	c.cdnHostIndex = bestIdx
	if maxTransfer > 10 {
		c.cdnTransferRates[c.cdnHostIndex] = maxTransfer / 2
	}
	return c.cdnHostIndex
}

// makeURL builds a content-addressed URL against the currently selected
// CDN host.
func (c *Coordinator) makeURL(typ ResourceType, isIndex bool, k key.ContentKey) (string, error) {
	if c.cdnHostCount == 0 {
		return "", newNoHostsError()
	}
	idx := c.selectHost()

	buf := ngdpbuf.NewBuffer(nil)
	sb := ngdpbuf.NewStringBuilder(buf)
	sb.AppendString("http://")
	sb.AppendString(c.cdnHosts[idx])
	sb.AppendChar('/')
	sb.AppendString(c.cdnPath)
	if seg := typ.pathSegment(); seg != "" {
		sb.AppendChar('/')
		sb.AppendString(seg)
		sb.AppendChar('/')
	} else {
		sb.AppendChar('/')
	}
	k.WriteURLFragment(sb)
	if isIndex {
		sb.AppendString(".index")
	}
	return sb.View().String(), nil
}

// currentHostIndex returns the index makeURL last selected, for
// statistics reporting and rate feedback.
func (c *Coordinator) currentHostIndex() int { return c.cdnHostIndex }

// recordTransferRate updates the transfer rate observed for host idx and
// advances the round-robin pointer, matching the source's per-attempt
// bookkeeping at the end of DownloadAlloc/Download.
func (c *Coordinator) recordTransferRate(idx int, bytesTransferred int, elapsedSeconds float64) {
	rate := 0
	if elapsedSeconds > 0 {
		rate = int(float64(bytesTransferred) / elapsedSeconds)
	}
	c.cdnTransferRates[idx] = rate
	if c.cdnHostCount > 0 {
		c.nextCDNHostIndex = (idx + 1) % c.cdnHostCount
	}
}

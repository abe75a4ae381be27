// Package client wires the allocator, file I/O façade, transport,
// logging, statistics, and remote coordinator into a single root object
// (§4.9), mirroring the shape of pkg/content's NewContentFetcher/Config
// pair: a Config struct, a DefaultConfig, and a New constructor that
// validates configuration before doing any network I/O.
package client

import (
	"time"

	"github.com/kestrelforge/ngdpclient/pkg/alloc"
	"github.com/kestrelforge/ngdpclient/pkg/key"
	"github.com/kestrelforge/ngdpclient/pkg/ngdpio"
	"github.com/kestrelforge/ngdpclient/pkg/ngdplog"
	"github.com/kestrelforge/ngdpclient/pkg/ngdpstats"
	"github.com/kestrelforge/ngdpclient/pkg/ngdptransport"
)

// Config configures a Client. The zero value is not valid; start from
// DefaultConfig.
type Config struct {
	// NGDPUrl is the patch-service base URL, e.g.
	// "http://us.patch.battle.net:1119/game".
	NGDPUrl string
	// NGDPRegion filters bootstrap PSV rows (§4.4).
	NGDPRegion string
	// GameUID is the product identifier appended to NGDPUrl when
	// fetching the bootstrap documents.
	GameUID string

	// HTTPRetryCount bounds download attempts per call; <= 0 defaults to
	// 5 (see remote.Config.RetryLimit).
	HTTPRetryCount int

	// DisableHTTPRequests skips Bootstrap's network calls entirely; the
	// caller must populate bootstrap state via OverrideCDNPath/
	// OverrideCDNHosts/OverrideBuildConfigKey/OverrideCDNConfigKey (or
	// Client.Remote().LoadSnapshot) before issuing downloads.
	DisableHTTPRequests bool

	// OverrideCDNPath and OverrideCDNHosts substitute for a /cdns
	// fetch when DisableHTTPRequests is set (§9.5, wired — see
	// SPEC_FULL.md §4).
	OverrideCDNPath  string
	OverrideCDNHosts []string

	// OverrideBuildConfigKey and OverrideCDNConfigKey substitute for the
	// corresponding /versions columns when DisableHTTPRequests is set.
	OverrideBuildConfigKey key.ContentKey
	OverrideCDNConfigKey   key.ContentKey

	// Allocate, Free, and Reallocate must be supplied together or not at
	// all; a partial set is an invalid-configuration failure at
	// construction (mirrors alloc.New's all-or-none contract, §4.1).
	Allocate   alloc.AllocateFunc
	Free       alloc.FreeFunc
	Reallocate alloc.ReallocateFunc

	// FS is the injectable file I/O façade; nil defaults to
	// ngdpio.DefaultFS.
	FS ngdpio.FS

	// Transport is the injectable download transport; nil defaults to a
	// ngdptransport.HTTPDownloader.
	Transport ngdptransport.Downloader

	// LogSink and StatsSink are pluggable reporting hooks; nil defaults
	// to a no-op sink for each.
	LogSink   ngdplog.Sink
	StatsSink ngdpstats.Sink

	// HTTPTimeout bounds the default HTTP transport's per-request
	// timeout when Transport is not supplied.
	HTTPTimeout time.Duration
}

// DefaultConfig returns a Config with the original client's fallback
// values applied (retry limit 5, no overrides, default transport).
func DefaultConfig() Config {
	return Config{
		HTTPRetryCount: 5,
		HTTPTimeout:    30 * time.Second,
	}
}

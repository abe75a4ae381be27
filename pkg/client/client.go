package client

import (
	"context"
	"net/http"

	"github.com/kestrelforge/ngdpclient/pkg/alloc"
	"github.com/kestrelforge/ngdpclient/pkg/buildconfig"
	"github.com/kestrelforge/ngdpclient/pkg/cdnconfig"
	"github.com/kestrelforge/ngdpclient/pkg/ngdpbuf"
	"github.com/kestrelforge/ngdpclient/pkg/ngdpio"
	"github.com/kestrelforge/ngdpclient/pkg/ngdplog"
	"github.com/kestrelforge/ngdpclient/pkg/ngdpstats"
	"github.com/kestrelforge/ngdpclient/pkg/ngdptransport"
	"github.com/kestrelforge/ngdpclient/pkg/remote"
)

// Client is the root object wiring together every other package: the
// allocator, the file I/O façade, the download transport, logging,
// statistics, and the remote coordinator (§4.9).
type Client struct {
	alloc     *alloc.Allocator
	fs        ngdpio.FS
	transport ngdptransport.Downloader
	log       *ngdplog.Logger
	remote    *remote.Coordinator

	disableHTTPRequests bool
}

// New validates cfg and constructs a Client. It performs no network I/O;
// call Bootstrap to fetch CDN topology, or LoadSnapshot/restore from
// override fields when cfg.DisableHTTPRequests is set.
func New(cfg Config) (*Client, error) {
	if n := boolCount(cfg.Allocate != nil, cfg.Free != nil, cfg.Reallocate != nil); n != 0 && n != 3 {
		return nil, newInvalidConfigError("Allocate, Free, and Reallocate must be supplied together or not at all", nil)
	}
	if cfg.NGDPUrl == "" && !cfg.DisableHTTPRequests {
		return nil, newInvalidConfigError("NGDPUrl is required unless DisableHTTPRequests is set", nil)
	}
	if cfg.GameUID == "" && !cfg.DisableHTTPRequests {
		return nil, newInvalidConfigError("GameUID is required unless DisableHTTPRequests is set", nil)
	}

	a := alloc.Default()
	if cfg.Allocate != nil {
		var err error
		a, err = alloc.New(cfg.Allocate, cfg.Free, cfg.Reallocate)
		if err != nil {
			return nil, newInvalidConfigError("invalid allocator callbacks", err)
		}
	}

	fs := cfg.FS
	if fs == nil {
		fs = ngdpio.DefaultFS
	}

	transport := cfg.Transport
	if transport == nil {
		var httpClient *http.Client
		if cfg.HTTPTimeout > 0 {
			httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
		}
		transport = ngdptransport.NewHTTPDownloader(httpClient)
	}

	logger := ngdplog.New(cfg.LogSink)

	statsSink := cfg.StatsSink
	if statsSink == nil {
		statsSink = ngdpstats.Noop
	}

	coordinator := remote.New(remote.Config{
		URL:        cfg.NGDPUrl,
		UID:        cfg.GameUID,
		Region:     cfg.NGDPRegion,
		RetryLimit: cfg.HTTPRetryCount,
		Transport:  transport,
		Stats:      statsSink,
		Allocator:  a,
	})

	c := &Client{
		alloc:               a,
		fs:                  fs,
		transport:           transport,
		log:                 logger,
		remote:              coordinator,
		disableHTTPRequests: cfg.DisableHTTPRequests,
	}

	if cfg.DisableHTTPRequests {
		c.remote.LoadSnapshot(remote.BootstrapSnapshot{
			CDNPath:     cfg.OverrideCDNPath,
			CDNHosts:    cfg.OverrideCDNHosts,
			BuildConfig: cfg.OverrideBuildConfigKey,
			CDNConfig:   cfg.OverrideCDNConfigKey,
		})
	}

	return c, nil
}

// Bootstrap fetches and parses the /cdns and /versions documents. A
// no-op if the client was constructed with DisableHTTPRequests.
func (c *Client) Bootstrap(ctx context.Context) error {
	if c.disableHTTPRequests {
		return nil
	}
	if err := c.remote.Bootstrap(ctx); err != nil {
		c.log.Errorf("bootstrap failed: %v", err)
		return newBootstrapFailedError(err)
	}
	c.log.Infof("bootstrap complete: versions=%s", c.remote.VersionsName())
	return nil
}

// Remote exposes the underlying coordinator for download operations.
func (c *Client) Remote() *remote.Coordinator { return c.remote }

// FetchCDNConfig downloads and parses the CDN config document named by
// the coordinator's CDNConfigKey.
func (c *Client) FetchCDNConfig(ctx context.Context) (cdnconfig.Config, error) {
	data, err := c.remote.DownloadAllocByKey(ctx, remote.ResourceConfig, false, c.remote.CDNConfigKey())
	if err != nil {
		return cdnconfig.Config{}, err
	}
	return cdnconfig.Parse(ngdpbuf.NewView(data)), nil
}

// FetchBuildConfig downloads and parses the build config document named
// by the coordinator's BuildConfigKey.
func (c *Client) FetchBuildConfig(ctx context.Context) (buildconfig.Config, error) {
	data, err := c.remote.DownloadAllocByKey(ctx, remote.ResourceConfig, false, c.remote.BuildConfigKey())
	if err != nil {
		return buildconfig.Config{}, err
	}
	return buildconfig.Parse(ngdpbuf.NewView(data))
}

// FS returns the client's configured file I/O façade.
func (c *Client) FS() ngdpio.FS { return c.fs }

// Allocator returns the client's configured byte allocator.
func (c *Client) Allocator() *alloc.Allocator { return c.alloc }

func boolCount(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

package remote

import (
	"context"
	"time"

	"github.com/kestrelforge/ngdpclient/pkg/key"
	"github.com/kestrelforge/ngdpclient/pkg/ngdpstats"
	"github.com/kestrelforge/ngdpclient/pkg/ngdptransport"
)

// DownloadAllocByURL fetches url with the retry loop, allocating a fresh
// buffer for the response. It does not consult the host-rotation state —
// used for the bootstrap /cdns and /versions fetches themselves, and for
// any caller that already has a full URL in hand.
func (c *Coordinator) DownloadAllocByURL(ctx context.Context, url string) ([]byte, error) {
	return c.retryLoop(ctx, retryLoopOpts{
		hostAware: false,
		makeURL:   func() (string, int, error) { return url, -1, nil },
	})
}

// DownloadAllocByKey fetches a content-addressed resource, allocating a
// fresh buffer for the response. Each retry reselects a CDN host and
// rebuilds the URL, mirroring the source's per-attempt _MakeURL call.
func (c *Coordinator) DownloadAllocByKey(ctx context.Context, typ ResourceType, isIndex bool, k key.ContentKey) ([]byte, error) {
	return c.retryLoop(ctx, retryLoopOpts{
		hostAware: true,
		makeURL:   func() (string, int, error) { url, err := c.makeURL(typ, isIndex, k); return url, c.currentHostIndex(), err },
	})
}

// DownloadFixedByURL fetches url into dst (and the optional byte range
// [rangeStart, rangeEnd)), never allocating. If the response does not fit
// in dst, a *DownloadError with Code ErrCodeBufferTooSmall is returned.
func (c *Coordinator) DownloadFixedByURL(ctx context.Context, url string, dst []byte, rangeStart, rangeEnd int) ([]byte, error) {
	return c.retryLoopFixed(ctx, retryLoopOpts{
		hostAware: false,
		makeURL:   func() (string, int, error) { return url, -1, nil },
	}, dst, rangeStart, rangeEnd)
}

// DownloadFixedByKey fetches a content-addressed resource into dst (and
// the optional byte range [rangeStart, rangeEnd)), never allocating.
func (c *Coordinator) DownloadFixedByKey(ctx context.Context, typ ResourceType, isIndex bool, k key.ContentKey, dst []byte, rangeStart, rangeEnd int) ([]byte, error) {
	return c.retryLoopFixed(ctx, retryLoopOpts{
		hostAware: true,
		makeURL:   func() (string, int, error) { url, err := c.makeURL(typ, isIndex, k); return url, c.currentHostIndex(), err },
	}, dst, rangeStart, rangeEnd)
}

// retryLoopOpts is the per-call behavior retryLoop/retryLoopFixed share:
// whether this call participates in host rotation, and how to produce
// the next attempt's URL (and, for host-aware calls, which host index
// that attempt used).
type retryLoopOpts struct {
	hostAware bool
	makeURL   func() (url string, hostIdx int, err error)
}

// retryLoop drives the allocate-mode retry loop: up to c.retryLimit
// attempts, stopping as soon as a non-server-error status is returned,
// reporting START/RETRY/FINISH statistics around the whole call exactly
// as original_source/Remote.cpp's DownloadAlloc does.
func (c *Coordinator) retryLoop(ctx context.Context, opts retryLoopOpts) ([]byte, error) {
	overallStart := time.Now()
	var (
		data    []byte
		lastURL string
		lastErr error
		resSize int
		hostIdx = -1
	)

	for i := 0; i < c.retryLimit; i++ {
		url, idx, err := opts.makeURL()
		if err != nil {
			return nil, err
		}
		lastURL = url
		hostIdx = idx

		if i == 0 {
			c.stats(ngdpstats.Event{Type: ngdpstats.DownloadStarted, Arg0: int64(idx)})
		} else {
			c.stats(ngdpstats.Event{Type: ngdpstats.DownloadRetry, Arg0: int64(idx), Arg1: time.Since(overallStart).Microseconds(), Arg2: int64(i + 1)})
		}

		attemptStart := time.Now()
		body, status, err := c.transport.Download(ctx, url, 0, 0, nil)
		elapsed := time.Since(attemptStart).Seconds()

		if opts.hostAware {
			size := 0
			if status == ngdptransport.StatusSuccess {
				size = len(body)
			}
			c.recordTransferRate(idx, size, elapsed)
		}

		switch status {
		case ngdptransport.StatusSuccess:
			data = c.rehome(body)
			resSize = len(body)
			lastErr = nil
		case ngdptransport.StatusClientError:
			c.stats(ngdpstats.Event{Type: ngdpstats.DownloadFinished, Arg0: int64(hostIdx), Arg1: int64(resSize), Arg2: time.Since(overallStart).Microseconds()})
			return nil, newClientError(url, err)
		default:
			lastErr = err
			continue
		}
		break
	}

	c.stats(ngdpstats.Event{Type: ngdpstats.DownloadFinished, Arg0: int64(hostIdx), Arg1: int64(resSize), Arg2: time.Since(overallStart).Microseconds()})

	if data == nil {
		return nil, newRetriesExhaustedError(lastURL, lastErr)
	}
	return data, nil
}

// rehome copies an allocate-mode response body into a buffer sourced from
// the coordinator's configured allocator, so the returned slice honors the
// ownership contract of §4.1 ("buffers passed to download-allocate are
// owned by the caller... and must be released through the configured free
// function") even though the transport itself reads into a plain
// GC-backed slice.
func (c *Coordinator) rehome(body []byte) []byte {
	owned := c.alloc.Allocate(len(body))
	copy(owned, body)
	return owned
}

// retryLoopFixed is retryLoop's fixed-buffer counterpart: it never
// allocates a response buffer, and a response that overflows dst ends
// the loop immediately with ErrCodeBufferTooSmall rather than retrying
// (an oversized response will not shrink on retry).
func (c *Coordinator) retryLoopFixed(ctx context.Context, opts retryLoopOpts, dst []byte, rangeStart, rangeEnd int) ([]byte, error) {
	overallStart := time.Now()
	var (
		result  []byte
		lastURL string
		lastErr error
		resSize int
		hostIdx = -1
	)

	for i := 0; i < c.retryLimit; i++ {
		url, idx, err := opts.makeURL()
		if err != nil {
			return nil, err
		}
		lastURL = url
		hostIdx = idx

		if i == 0 {
			c.stats(ngdpstats.Event{Type: ngdpstats.DownloadStarted, Arg0: int64(idx), Arg1: int64(len(dst))})
		} else {
			c.stats(ngdpstats.Event{Type: ngdpstats.DownloadRetry, Arg0: int64(idx), Arg1: time.Since(overallStart).Microseconds(), Arg2: int64(i + 1)})
		}

		attemptStart := time.Now()
		body, status, err := c.transport.Download(ctx, url, rangeStart, rangeEnd, dst)
		elapsed := time.Since(attemptStart).Seconds()

		if opts.hostAware {
			size := len(body)
			if status != ngdptransport.StatusSuccess {
				size = 0
			} else if len(dst) == 0 {
				size = 512 // matches the source's bogus-size fallback for a HEAD-shaped request
			}
			c.recordTransferRate(idx, size, elapsed)
		}

		switch status {
		case ngdptransport.StatusSuccess:
			result = body
			resSize = len(body)
			lastErr = nil
		case ngdptransport.StatusBufferTooSmall:
			c.stats(ngdpstats.Event{Type: ngdpstats.DownloadFinished, Arg0: int64(hostIdx), Arg1: int64(resSize), Arg2: time.Since(overallStart).Microseconds()})
			return nil, newBufferTooSmallError(url)
		case ngdptransport.StatusClientError:
			c.stats(ngdpstats.Event{Type: ngdpstats.DownloadFinished, Arg0: int64(hostIdx), Arg1: int64(resSize), Arg2: time.Since(overallStart).Microseconds()})
			return nil, newClientError(url, err)
		default:
			lastErr = err
			continue
		}
		break
	}

	c.stats(ngdpstats.Event{Type: ngdpstats.DownloadFinished, Arg0: int64(hostIdx), Arg1: int64(resSize), Arg2: time.Since(overallStart).Microseconds()})

	if result == nil && lastErr != nil {
		return nil, newRetriesExhaustedError(lastURL, lastErr)
	}
	return result, nil
}

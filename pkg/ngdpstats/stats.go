// Package ngdpstats defines the statistics event vocabulary the client
// reports through a pluggable sink (§4.10). Grounded in shape on
// pkg/content's ContentStats/ErrorStats counters, though the event
// taxonomy itself is the spec's own frozen vocabulary rather than
// anything in the teacher.
package ngdpstats

import "github.com/kestrelforge/ngdpclient/pkg/key"

// EventType identifies which statistics event fired. The numeric values
// are part of the wire-stable vocabulary and must never be renumbered.
type EventType int

const (
	DownloadStarted  EventType = 1
	DownloadFinished EventType = 2
	DownloadRetry    EventType = 3
	Patching         EventType = 4
	CASCReadStarted  EventType = 5
	CASCReadFinished EventType = 6
)

func (t EventType) String() string {
	switch t {
	case DownloadStarted:
		return "DOWNLOAD_STARTED"
	case DownloadFinished:
		return "DOWNLOAD_FINISHED"
	case DownloadRetry:
		return "DOWNLOAD_RETRY"
	case Patching:
		return "PATCHING"
	case CASCReadStarted:
		return "CASC_READ_STARTED"
	case CASCReadFinished:
		return "CASC_READ_FINISHED"
	default:
		return "UNKNOWN"
	}
}

// Event is a single statistics report. Arg0..Arg2 carry event-specific
// numeric payloads (host index, byte counts, elapsed microseconds, retry
// attempt number); Key is set only for events tied to a specific content
// key and is otherwise the zero key.
type Event struct {
	Type EventType
	Arg0 int64
	Arg1 int64
	Arg2 int64
	Key  key.ContentKey
}

// Sink receives statistics events. Implementations must not block the
// caller for long; the remote coordinator reports synchronously on the
// download path.
type Sink func(Event)

// Noop is a Sink that discards every event, used when the caller has not
// configured one.
func Noop(Event) {}

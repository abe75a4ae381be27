// Package ngdplog implements the client's log façade: a pluggable sink
// function fed formatted lines through a reused scratch buffer, mirroring
// the original client's logFn(const char *) callback contract rather than
// a structured logging library — there is no log line schema here beyond
// "one formatted string," and the teacher repo carries no logging
// dependency of its own either (see DESIGN.md).
package ngdplog

import (
	"fmt"

	"github.com/kestrelforge/ngdpclient/pkg/ngdpbuf"
)

// scratchCapacity is the size of the reusable formatting buffer. A log
// line longer than this is truncated rather than growing the buffer.
const scratchCapacity = 64 * 1024

// Level classifies a log line's severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Sink receives one already-formatted log line.
type Sink func(level Level, line string)

// Noop discards every log line.
func Noop(Level, string) {}

// Logger copies each formatted line into a reused fixed-size scratch
// buffer before handing it to a Sink. Formatting itself (fmt.Sprintf) and
// the string passed to the Sink still allocate on every call.
type Logger struct {
	sink    Sink
	scratch *ngdpbuf.Buffer
}

// New returns a Logger that reports through sink. A nil sink behaves as
// Noop.
func New(sink Sink) *Logger {
	if sink == nil {
		sink = Noop
	}
	return &Logger{
		sink:    sink,
		scratch: ngdpbuf.NewWithCapacity(nil, scratchCapacity),
	}
}

// Logf formats a line and reports it at level. The formatted line is
// truncated to scratchCapacity bytes rather than growing the scratch
// buffer.
func (l *Logger) Logf(level Level, format string, args ...interface{}) {
	l.scratch.Reset()
	line := fmt.Sprintf(format, args...)
	if len(line) > scratchCapacity {
		line = line[:scratchCapacity]
	}
	l.scratch.Append([]byte(line))
	l.sink(level, l.scratch.View().String())
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.Logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.Logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.Logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.Logf(LevelError, format, args...) }

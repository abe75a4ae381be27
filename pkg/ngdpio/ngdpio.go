// Package ngdpio defines the client's injectable file I/O façade
// (§4.9): open/seek/read/write/close, so callers can redirect CASC
// storage onto something other than the local filesystem (an archive,
// an in-memory store, a test double) without the rest of the client
// knowing the difference.
package ngdpio

import "io"

// Whence matches io.Seek* for callers that don't want to import io
// themselves.
type Whence int

const (
	SeekStart   Whence = iota // io.SeekStart
	SeekCurrent               // io.SeekCurrent
	SeekEnd                   // io.SeekEnd
)

// File is the minimal handle the client needs from an open file: seek,
// read, write, close. *os.File satisfies this interface already.
type File interface {
	io.ReadWriteCloser
	Seek(offset int64, whence int) (int64, error)
}

// OpenFlag mirrors the subset of os.O_* flags the client needs.
type OpenFlag int

const (
	OpenRead OpenFlag = 1 << iota
	OpenWrite
	OpenCreate
	OpenTruncate
)

// FS is the pluggable file-system façade. A Client constructed without
// one defaults to DefaultFS, which opens real files via package os.
type FS interface {
	Open(path string, flag OpenFlag) (File, error)
	Remove(path string) error
}

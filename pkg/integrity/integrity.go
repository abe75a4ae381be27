// Package integrity verifies downloaded blobs against a BLAKE3 digest
// computed over their content, streamed through a 64KB buffer. This is a
// supplemental corruption check, not an authentication mechanism — the
// spec's Non-goals exclude real transport/content authentication, so
// Digest below is strictly an integrity aid a caller may opt into, not a
// trust boundary. Grounded in streaming shape on
// pkg/content/integrity.go's SHA256-over-64KB-buffer pattern; BLAKE3
// itself is this module's wired choice of hash (see DESIGN.md).
package integrity

import (
	"bytes"
	"fmt"
	"io"

	"lukechampine.com/blake3"
)

// Digest is a BLAKE3-256 content digest.
type Digest [32]byte

func (d Digest) String() string {
	return fmt.Sprintf("%x", [32]byte(d))
}

// Sum computes the BLAKE3 digest of data.
func Sum(data []byte) Digest {
	h := blake3.New(32, nil)
	h.Write(data)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// SumReader streams r through a 64KB buffer and computes its BLAKE3
// digest, mirroring the teacher's file-hashing loop shape but over an
// arbitrary io.Reader rather than an *os.File.
func SumReader(r io.Reader) (Digest, error) {
	h := blake3.New(32, nil)
	buf := make([]byte, 64*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Digest{}, err
		}
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d, nil
}

// Verify reports whether data's BLAKE3 digest matches want.
func Verify(data []byte, want Digest) bool {
	return bytes.Equal(Sum(data)[:], want[:])
}

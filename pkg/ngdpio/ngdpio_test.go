package ngdpio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultFSWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.dat")

	f, err := DefaultFS.Open(path, OpenWrite|OpenCreate|OpenTruncate)
	if err != nil {
		t.Fatalf("Open(write): %v", err)
	}
	if _, err := f.Write([]byte("hello")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err = DefaultFS.Open(path, OpenRead)
	if err != nil {
		t.Fatalf("Open(read): %v", err)
	}
	defer f.Close()

	buf := make([]byte, 5)
	if _, err := f.Read(buf); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf) != "hello" {
		t.Errorf("read %q, want hello", buf)
	}
}

func TestDefaultFSRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.dat")
	os.WriteFile(path, []byte("x"), 0o644)

	if err := DefaultFS.Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file still exists after Remove")
	}
}

package buildconfig

import (
	"errors"
	"testing"

	"github.com/kestrelforge/ngdpclient/pkg/ngdpbuf"
)

const doc = `root = 00000000000000000000000000000001
install = 11111111111111111111111111111111
encoding = 22222222222222222222222222222222 33333333333333333333333333333333
encoding-size = 100 200
install-size = 12345
build-name = MyGame
build-uid = wow_classic
`

func TestParseHappyPath(t *testing.T) {
	c, err := Parse(ngdpbuf.ViewString(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Root.IsZero() {
		t.Error("Root not parsed")
	}
	if c.EncodingSize[0] != 100 || c.EncodingSize[1] != 200 {
		t.Errorf("EncodingSize = %v, want [100 200]", c.EncodingSize)
	}
	if c.InstallSize != 12345 {
		t.Errorf("InstallSize = %d, want 12345", c.InstallSize)
	}
	if c.BuildName != "MyGame" {
		t.Errorf("BuildName = %q, want MyGame", c.BuildName)
	}
	if c.BuildUID != "wow_classic" {
		t.Errorf("BuildUID = %q, want wow_classic", c.BuildUID)
	}
}

func TestParseMalformedEncodingField(t *testing.T) {
	_, err := Parse(ngdpbuf.ViewString("encoding = onlyonepart\n"))
	if !errors.Is(err, ErrMalformedField) {
		t.Errorf("Parse error = %v, want ErrMalformedField", err)
	}
}

func TestParseMalformedEncodingSizeField(t *testing.T) {
	_, err := Parse(ngdpbuf.ViewString("encoding-size = 1 2 3\n"))
	if !errors.Is(err, ErrMalformedField) {
		t.Errorf("Parse error = %v, want ErrMalformedField", err)
	}
}

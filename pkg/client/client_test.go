package client

import (
	"context"
	"testing"

	"github.com/kestrelforge/ngdpclient/pkg/key"
	"github.com/kestrelforge/ngdpclient/pkg/ngdptransport"
)

const cdnsDoc = "Name!STRING:0|Path!STRING:0|Hosts!STRING:0\n" +
	"us|tpr/wow|h1.example h2.example\n"

const versionsDoc = "Region!STRING:0|BuildConfig!HEX:16|CDNConfig!HEX:16|VersionsName!STRING:0\n" +
	"us|00000000000000000000000000000001|11111111111111111111111111111111|8.2.0.30000\n"

type scriptedTransport struct {
	byPath map[string][]byte
}

func (s *scriptedTransport) Download(ctx context.Context, url string, rs, re int, dst []byte) ([]byte, ngdptransport.Status, error) {
	for suffix, data := range s.byPath {
		if len(url) >= len(suffix) && url[len(url)-len(suffix):] == suffix {
			return data, ngdptransport.StatusSuccess, nil
		}
	}
	return nil, ngdptransport.StatusClientError, nil
}

func TestNewRejectsPartialAllocatorCallbacks(t *testing.T) {
	_, err := New(Config{
		NGDPUrl:  "http://x",
		GameUID:  "u",
		Allocate: func(n int) []byte { return make([]byte, n) },
	})
	if err == nil {
		t.Fatal("expected an error for partial allocator callbacks")
	}
}

func TestNewRequiresURLAndUID(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected an error when NGDPUrl/GameUID are missing")
	}
}

func TestDisableHTTPRequestsSkipsBootstrap(t *testing.T) {
	overrideKey, err := key.DecodeHexString("00000000000000000000000000000001")
	if err != nil {
		t.Fatalf("DecodeHexString: %v", err)
	}

	c, err := New(Config{
		DisableHTTPRequests:    true,
		OverrideCDNPath:        "tpr/wow",
		OverrideCDNHosts:       []string{"h1.example"},
		OverrideBuildConfigKey: overrideKey,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
}

func TestBootstrapAndFetchConfigs(t *testing.T) {
	tr := &scriptedTransport{byPath: map[string][]byte{
		"/cdns":     []byte(cdnsDoc),
		"/versions": []byte(versionsDoc),
	}}

	c, err := New(Config{
		NGDPUrl:    "http://us.patch.example.com/game",
		GameUID:    "gameuid",
		NGDPRegion: "us",
		Transport:  tr,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	if c.Remote().VersionsName() != "8.2.0.30000" {
		t.Errorf("VersionsName() = %q, want 8.2.0.30000", c.Remote().VersionsName())
	}
}

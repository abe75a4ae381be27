package remote

import "github.com/kestrelforge/ngdpclient/pkg/codec/cborcanon"

// BootstrapSnapshot is the CBOR-serializable subset of a Coordinator's
// bootstrap state: the CDN host list and the build/CDN config keys
// learned from /cdns and /versions. It exists to answer §9 Open Question
// 9.5 — whether a caller can override or cache bootstrap results instead
// of always hitting the network in Bootstrap — by making that state
// portable: persist it once, then reconstruct a Coordinator via
// LoadSnapshot on a later run without a bootstrap round trip.
type BootstrapSnapshot struct {
	CDNPath      string   `cbor:"cdn_path"`
	CDNHosts     []string `cbor:"cdn_hosts"`
	BuildConfig  [16]byte `cbor:"build_config"`
	CDNConfig    [16]byte `cbor:"cdn_config"`
	VersionsName string   `cbor:"versions_name"`
}

// Snapshot captures the coordinator's current bootstrap state.
func (c *Coordinator) Snapshot() BootstrapSnapshot {
	hosts := make([]string, c.cdnHostCount)
	copy(hosts, c.cdnHosts[:c.cdnHostCount])
	return BootstrapSnapshot{
		CDNPath:      c.cdnPath,
		CDNHosts:     hosts,
		BuildConfig:  c.buildConfigKey,
		CDNConfig:    c.cdnConfigKey,
		VersionsName: c.versionsName,
	}
}

// MarshalSnapshot encodes the coordinator's current bootstrap state as
// canonical CBOR.
func (c *Coordinator) MarshalSnapshot() ([]byte, error) {
	return cborcanon.Marshal(c.Snapshot())
}

// LoadSnapshot restores bootstrap state from a previously captured
// BootstrapSnapshot, without performing any network I/O. This is the
// override-bootstrap path: a caller that already knows the CDN topology
// (from a prior Bootstrap call, a config file, or an operator override)
// can skip Bootstrap entirely.
func (c *Coordinator) LoadSnapshot(snap BootstrapSnapshot) {
	c.cdnPath = snap.CDNPath
	c.cdnHostCount = len(snap.CDNHosts)
	if c.cdnHostCount > maxCDNHosts {
		c.cdnHostCount = maxCDNHosts
	}
	for i := 0; i < c.cdnHostCount; i++ {
		c.cdnHosts[i] = snap.CDNHosts[i]
	}
	c.buildConfigKey = snap.BuildConfig
	c.cdnConfigKey = snap.CDNConfig
	c.versionsName = snap.VersionsName
}

// UnmarshalSnapshot decodes a canonical-CBOR-encoded BootstrapSnapshot and
// loads it via LoadSnapshot.
func (c *Coordinator) UnmarshalSnapshot(data []byte) error {
	var snap BootstrapSnapshot
	if err := cborcanon.Unmarshal(data, &snap); err != nil {
		return err
	}
	c.LoadSnapshot(snap)
	return nil
}

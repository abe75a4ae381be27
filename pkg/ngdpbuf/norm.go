package ngdpbuf

import "golang.org/x/text/unicode/norm"

// normalizedString applies NFC normalization to v, matching the approach
// pkg/honeytag takes in the reference P2P stack for comparing identifier
// strings that may have arrived in different (but canonically equivalent)
// Unicode compositions.
func normalizedString(v View) string {
	return norm.NFC.String(v.String())
}

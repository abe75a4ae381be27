package buildconfig

import "errors"

// ErrMalformedField is returned by Parse when an "encoding" or
// "encoding-size" field does not split into exactly two space-separated
// values.
var ErrMalformedField = errors.New("buildconfig: malformed two-element field")

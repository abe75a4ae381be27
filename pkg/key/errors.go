package key

import "errors"

// ErrWrongLength is returned by DecodeHex when the input is not exactly
// 32 characters long. Unlike invalid hex digits (tolerated, see DecodeHex),
// a wrong-length input cannot be silently reinterpreted as a key and is
// always an error.
var ErrWrongLength = errors.New("key: hex string must be exactly 32 characters")

package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the hex-encoded SHA256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// KeyPrefix returns the first prefixLen characters of SHA256(input). Used
// to derive short, fixed-alphabet cache keys from parameter tuples.
func KeyPrefix(input string, prefixLen int) string {
	full := SHA256Hex(input)
	if prefixLen > len(full) {
		return full
	}
	return full[:prefixLen]
}

// ShortHash returns a 12-character hash prefix, used for correlating log
// entries without writing raw client addresses.
func ShortHash(input string) string {
	return KeyPrefix(input, 12)
}

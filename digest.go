package sha256hmac

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Digest is a SHA-256 or HMAC-SHA-256 output.
type Digest [Size]byte

// Hex returns the digest as 64 lowercase hex characters.
func (d Digest) Hex() string { return hex.EncodeToString(d[:]) }

// ParseDigest decodes a 64-character hex string.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if len(s) != 2*Size {
		return d, fmt.Errorf("%w: length %d, want %d", ErrInvalidDigest, len(s), 2*Size)
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return Digest{}, fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}
	return d, nil
}

// Equal reports whether two MACs are equal without leaking timing
// information about where they differ.
func Equal(mac1, mac2 []byte) bool {
	return subtle.ConstantTimeCompare(mac1, mac2) == 1
}

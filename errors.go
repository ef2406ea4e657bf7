package sha256hmac

import "errors"

var (
	// ErrUninitializedKey is returned when a MAC is used before SetKey.
	ErrUninitializedKey = errors.New("sha256hmac: mac key not set")

	// ErrInvalidState is returned by UnmarshalBinary for a malformed snapshot.
	ErrInvalidState = errors.New("sha256hmac: invalid hash state")

	ErrInvalidDigest = errors.New("sha256hmac: invalid digest")

	ErrHKDFLength = errors.New("sha256hmac: hkdf output too long")
)

package sha256hmac

import "fmt"

// HKDFMaxLength is the most output HKDFExpand can produce, 255 blocks.
const HKDFMaxLength = 255 * Size

// HKDFExtract returns the pseudorandom key HMAC(salt, ikm), RFC 5869
// section 2.2. An empty salt is treated as Size zero bytes.
func HKDFExtract(salt, ikm []byte) Digest {
	if len(salt) == 0 {
		var zero [Size]byte
		salt = zero[:]
	}
	return MACSum(salt, ikm)
}

// HKDFExpand fills dst with T(1) || T(2) || ... where
// T(i) = HMAC(prk, T(i-1) || info || i), RFC 5869 section 2.3.
func HKDFExpand(dst, prk, info []byte) error {
	if len(dst) > HKDFMaxLength {
		return fmt.Errorf("%w: %d bytes, max %d", ErrHKDFLength, len(dst), HKDFMaxLength)
	}
	m := NewMAC(prk)
	var t Digest
	offset := 0
	for i := 1; offset < len(dst); i++ {
		if i > 1 {
			m.Write(t[:])
		}
		m.Write(info)
		m.Write([]byte{byte(i)}) // i <= 255 by the length check
		t, _ = m.Finalize()
		offset += copy(dst[offset:], t[:])
	}
	return nil
}

// HKDF derives len(dst) bytes of key material from ikm.
func HKDF(dst, ikm, salt, info []byte) error {
	prk := HKDFExtract(salt, ikm)
	return HKDFExpand(dst, prk[:], info)
}

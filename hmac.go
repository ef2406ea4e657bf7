package sha256hmac

import "hash"

// HMAC(K, m) = H((K0 ^ opad) || H((K0 ^ ipad) || m)), RFC 2104.
const (
	ipad = 0x36
	opad = 0x5c
)

var _ hash.Hash = (*MAC)(nil)

// MACSum computes HMAC-SHA-256 of message under key.
func MACSum(key, message []byte) Digest {
	m := NewMAC(key)
	m.Write(message)
	d, _ := m.Finalize() // keyed above
	return d
}

// MAC is a streaming HMAC-SHA-256 engine. The zero value has no key and
// rejects input until SetKey is called.
//
// After Finalize the MAC keeps its key and is ready for the next message.
type MAC struct {
	inner Hasher
	key   [BlockSize]byte // K0: key zero-padded to the block size
	keyed bool
}

// NewMAC returns a MAC keyed with key.
func NewMAC(key []byte) *MAC {
	m := new(MAC)
	m.SetKey(key)
	return m
}

// SetKey installs key and starts a new message. Keys longer than
// BlockSize are replaced by their SHA-256 digest. Calling SetKey on a
// keyed MAC discards the old key and any message in progress.
func (m *MAC) SetKey(key []byte) {
	m.inner.Reset()
	m.key = [BlockSize]byte{}
	if len(key) > BlockSize {
		m.inner.Write(key)
		d := m.inner.Finalize()
		copy(m.key[:], d[:])
	} else {
		copy(m.key[:], key)
	}
	m.keyed = true
	m.begin(&m.inner)
}

// begin absorbs the inner pad into a freshly reset h.
func (m *MAC) begin(h *Hasher) {
	p := m.pad(ipad)
	h.Write(p[:])
}

func (m *MAC) pad(mask byte) [BlockSize]byte {
	var p [BlockSize]byte
	for i, k := range m.key {
		p[i] = k ^ mask
	}
	return p
}

// Write absorbs p into the message.
func (m *MAC) Write(p []byte) (int, error) {
	if !m.keyed {
		return 0, ErrUninitializedKey
	}
	return m.inner.Write(p)
}

// WriteString absorbs the bytes of s.
func (m *MAC) WriteString(s string) (int, error) {
	return m.Write([]byte(s))
}

// Finalize returns the MAC of the message absorbed since the last
// SetKey, Reset or Finalize, and starts a new message under the same key.
func (m *MAC) Finalize() (Digest, error) {
	if !m.keyed {
		return Digest{}, ErrUninitializedKey
	}
	d := m.outer(&m.inner)
	m.begin(&m.inner)
	return d, nil
}

// outer finishes the inner hash in h and runs the outer pass on the same
// engine. Finalize leaves h at its initial state, so the outer pass starts
// from the IV with a zero length.
func (m *MAC) outer(h *Hasher) Digest {
	in := h.Finalize()
	p := m.pad(opad)
	h.Write(p[:])
	h.Write(in[:])
	return h.Finalize()
}

// Reset discards the message in progress and keeps the key.
func (m *MAC) Reset() {
	if !m.keyed {
		return
	}
	m.inner.Reset()
	m.begin(&m.inner)
}

// Sum appends the current MAC to b without changing the MAC state.
// It panics if no key was set, as hash.Hash has no error return.
func (m *MAC) Sum(b []byte) []byte {
	if !m.keyed {
		panic(ErrUninitializedKey)
	}
	h := m.inner
	d := m.outer(&h)
	return append(b, d[:]...)
}

// Size returns the MAC length, 32.
func (m *MAC) Size() int { return Size }

// BlockSize returns the underlying hash block length, 64.
func (m *MAC) BlockSize() int { return BlockSize }

// Package sha256hmac provides streaming SHA-256 hashing (FIPS 180-4) and
// HMAC-SHA-256 message authentication (RFC 2104) built on it.
//
// Hasher is an incremental hash engine: absorb any number of chunks with
// Write, then Finalize to obtain the 32-byte digest. Finalize leaves the
// engine reset and ready for the next message. MAC layers the keyed
// construction over a Hasher and follows the same lifecycle.
//
// The compression function is a plain 64-round loop with no assembly.
// Engines are not safe for concurrent use; keep one per stream.
package sha256hmac

import (
	"encoding"
	"encoding/binary"
	"hash"
)

const (
	// Size is the length of a SHA-256 digest in bytes.
	Size = 32
	// BlockSize is the SHA-256 block length in bytes.
	BlockSize = 64
)

const (
	magic              = "sha\x03"
	marshaledStateSize = len(magic) + 8*4 + BlockSize + 8
)

var (
	_ hash.Hash                  = (*Hasher)(nil)
	_ encoding.BinaryMarshaler   = (*Hasher)(nil)
	_ encoding.BinaryUnmarshaler = (*Hasher)(nil)
)

// Sum256 computes the SHA-256 digest of data.
func Sum256(data []byte) Digest {
	var h Hasher
	h.Reset()
	h.Write(data)
	return h.Finalize()
}

// Hasher is a streaming SHA-256 engine. The zero value is ready to use.
type Hasher struct {
	h     [8]uint32
	buf   [BlockSize]byte
	nx    int    // pending bytes in buf
	len   uint64 // bytes absorbed since the last reset
	ready bool
}

// New returns a Hasher in its initial state.
func New() *Hasher {
	h := new(Hasher)
	h.Reset()
	return h
}

// NewHash returns a new hash.Hash computing SHA-256. It fits anywhere a
// func() hash.Hash is expected.
func NewHash() hash.Hash { return New() }

// Reset loads the initial hash value and discards all absorbed input.
func (h *Hasher) Reset() {
	h.h = [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
	h.buf = [BlockSize]byte{}
	h.nx = 0
	h.len = 0
	h.ready = true
}

func (h *Hasher) init() {
	if !h.ready {
		h.Reset()
	}
}

// Write absorbs p. It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	h.init()
	n := len(p)
	h.len += uint64(n)

	if h.nx > 0 {
		c := copy(h.buf[h.nx:], p)
		h.nx += c
		p = p[c:]
		if h.nx == BlockSize {
			block(&h.h, h.buf[:])
			h.nx = 0
		}
	}

	if len(p) >= BlockSize {
		full := len(p) &^ (BlockSize - 1)
		block(&h.h, p[:full])
		p = p[full:]
	}

	if len(p) > 0 {
		h.nx = copy(h.buf[:], p)
	}
	return n, nil
}

// WriteString absorbs the bytes of s.
func (h *Hasher) WriteString(s string) (int, error) {
	return h.Write([]byte(s))
}

// Finalize pads the message, returns its digest and resets the hasher.
func (h *Hasher) Finalize() Digest {
	h.init()
	d := h.checkSum()
	h.Reset()
	return d
}

// Sum appends the digest of the data written so far to b.
// Does not modify the hasher state.
func (h *Hasher) Sum(b []byte) []byte {
	h.init()
	c := *h
	d := c.checkSum()
	return append(b, d[:]...)
}

// Len returns the number of bytes absorbed since the last reset.
func (h *Hasher) Len() uint64 { return h.len }

// Size returns the digest length, 32.
func (h *Hasher) Size() int { return Size }

// BlockSize returns the compression block length, 64.
func (h *Hasher) BlockSize() int { return BlockSize }

// checkSum appends the padding and length trailer and serialises the state.
// It mutates h; callers reset or discard it afterwards.
func (h *Hasher) checkSum() Digest {
	bitLen := h.len << 3

	// 0x80, zeros up to 56 mod 64, then the 64-bit big-endian bit length.
	var tmp [BlockSize + 8]byte
	tmp[0] = 0x80
	pad := 56 - h.nx
	if h.nx >= 56 {
		pad += BlockSize
	}
	binary.BigEndian.PutUint64(tmp[pad:], bitLen)
	h.Write(tmp[:pad+8])
	if h.nx != 0 {
		panic("sha256hmac: trailer did not end on a block boundary")
	}

	var d Digest
	for i, s := range h.h {
		binary.BigEndian.PutUint32(d[4*i:], s)
	}
	return d
}

// MarshalBinary snapshots the running state so the stream can be resumed
// later with UnmarshalBinary.
func (h *Hasher) MarshalBinary() ([]byte, error) {
	h.init()
	b := make([]byte, 0, marshaledStateSize)
	b = append(b, magic...)
	for _, s := range h.h {
		b = binary.BigEndian.AppendUint32(b, s)
	}
	b = append(b, h.buf[:h.nx]...)
	b = append(b, make([]byte, BlockSize-h.nx)...)
	b = binary.BigEndian.AppendUint64(b, h.len)
	return b, nil
}

// UnmarshalBinary restores a state produced by MarshalBinary.
func (h *Hasher) UnmarshalBinary(b []byte) error {
	if len(b) != marshaledStateSize || string(b[:len(magic)]) != magic {
		return ErrInvalidState
	}
	b = b[len(magic):]
	var st [8]uint32
	for i := range st {
		st[i] = binary.BigEndian.Uint32(b[4*i:])
	}
	b = b[4*len(st):]
	h.h = st
	copy(h.buf[:], b[:BlockSize])
	h.len = binary.BigEndian.Uint64(b[BlockSize:])
	h.nx = int(h.len % BlockSize)
	h.ready = true
	return nil
}

// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rfc6979

import (
	"bytes"
	"hash"
)

var (
	// singleZero is used during generator state updates.  It is provided
	// here to avoid the need to create it multiple times.
	singleZero = []byte{0x00}

	// singleOne is used during generator state updates.  It is provided
	// here to avoid the need to create it multiple times.
	singleOne = []byte{0x01}
)

// HMACDRBG implements the HMAC-based deterministic random bit generator
// described by section 10.1.2 of NIST SP 800-90A as it is employed for
// deterministic nonce generation by section 3.2 of RFC 6979.
//
// The generator state consists of two values, a keyed-hash key K and a
// chaining value V, each exactly one digest of the underlying hash function
// long.  Both are created on instantiation, mutated in place by every state
// transition, and never exposed to callers.
//
// The zero value is not usable.  Instances must be created with NewHMACDRBG,
// are NOT safe for concurrent use, and are intended to be exclusively owned
// by a single caller for their entire lifetime.
type HMACDRBG struct {
	mac *hmacHasher
	k   []byte
	v   []byte
}

// NewHMACDRBG returns a deterministic bit generator seeded from the provided
// entropy input, nonce, and optional personalization data, any of which may
// be nil.  Two generators instantiated with identical seed material produce
// identical output sequences for identical fill patterns.
func NewHMACDRBG(newHash func() hash.Hash, entropy, nonce, personalization []byte) *HMACDRBG {
	// Keying the MAC with nil is equivalent to keying it with the all-zero
	// initial K below since HMAC zero pads keys shorter than the block size.
	mac := newHMACHasher(newHash, nil)
	hashLen := mac.inner.Size()

	d := &HMACDRBG{
		mac: mac,
		k:   make([]byte, hashLen),            // K = 0x00 0x00 0x00 ... 0x00
		v:   bytes.Repeat(singleOne, hashLen), // V = 0x01 0x01 0x01 ... 0x01
	}
	d.update(entropy, nonce, personalization)
	return d
}

// update performs the HMAC-DRBG state update with the concatenation of the
// provided data mixed in as additional entropy:
//
//	K = MAC(K, V || 0x00 || data)
//	V = MAC(K, V)
//
// When data is non-empty, a second round keyed with the byte 0x01 in place of
// 0x00 is performed, followed by another advance of V.  Mixing new entropy
// into K this way guarantees that output produced after the update cannot be
// predicted from output produced before it without the new entropy.
//
// The MAC is left keyed with the updated K on return.
func (d *HMACDRBG) update(data ...[]byte) {
	// K = MAC(K, V || 0x00 || data)
	d.mac.Reset()
	d.mac.Write(d.v)
	d.mac.Write(singleZero)
	var dataLen int
	for _, b := range data {
		d.mac.Write(b)
		dataLen += len(b)
	}
	d.k = d.mac.Sum()

	// V = MAC(K, V)
	d.mac.ResetKey(d.k)
	d.mac.Write(d.v)
	d.v = d.mac.Sum()

	if dataLen == 0 {
		return
	}

	// K = MAC(K, V || 0x01 || data)
	d.mac.Reset()
	d.mac.Write(d.v)
	d.mac.Write(singleOne)
	for _, b := range data {
		d.mac.Write(b)
	}
	d.k = d.mac.Sum()

	// V = MAC(K, V)
	d.mac.ResetKey(d.k)
	d.mac.Write(d.v)
	d.v = d.mac.Sum()
}

// Reseed mixes the provided entropy into the generator state.  Output
// produced after a reseed cannot be predicted from output produced before it
// without knowledge of the reseed entropy.
func (d *HMACDRBG) Reseed(entropy []byte) {
	d.update(entropy)
}

// FillBytes fills out with generator output by repeatedly advancing the
// chaining value and copying digest-sized chunks until the buffer is full.
// The buffer may be any length, including shorter than one digest, in which
// case the leading bytes of the final chunk are used.
//
// The state is unconditionally advanced by an update with empty additional
// data afterwards, so previously returned output cannot be recovered from the
// resulting generator state and consecutive fills never repeat output.
func (d *HMACDRBG) FillBytes(out []byte) {
	for filled := 0; filled < len(out); {
		// V = MAC(K, V)
		d.mac.Reset()
		d.mac.Write(d.v)
		d.v = d.mac.Sum()

		filled += copy(out[filled:], d.v)
	}
	d.update()
}

// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rfc6979

import (
	"hash"
)

// hmacHasher implements a resettable version of HMAC that is generalized over
// the underlying hash function.
//
// Unlike crypto/hmac, rekeying an existing instance does not allocate, and
// the inner and outer padded key material is computed once per key and cached
// so that repeated invocations under the same key only pay for the message
// blocks.  The deterministic bit generator rekeys on every state update, so
// this matters for derivation throughput.
type hmacHasher struct {
	inner, outer hash.Hash
	ipad, opad   []byte
}

// Write adds data to the running hash.
func (h *hmacHasher) Write(p []byte) {
	h.inner.Write(p)
}

// initKey initializes the HMAC instance to the provided key.  The pad buffers
// must be zero beyond the key bytes when called, which is the case for a
// freshly allocated instance as well as after ResetKey clears them.
func (h *hmacHasher) initKey(key []byte) {
	// Hash the key if it is too large.
	if len(key) > len(h.ipad) {
		h.outer.Write(key)
		key = h.outer.Sum(nil)
		h.outer.Reset()
	}
	copy(h.ipad, key)
	copy(h.opad, key)
	for i := range h.ipad {
		h.ipad[i] ^= 0x36
	}
	for i := range h.opad {
		h.opad[i] ^= 0x5c
	}
	h.inner.Write(h.ipad)
}

// ResetKey resets the HMAC to its initial state and then initializes it with
// the provided key.  It is equivalent to creating a new instance with the
// provided key without allocating more memory.
func (h *hmacHasher) ResetKey(key []byte) {
	h.inner.Reset()
	h.outer.Reset()
	for i := range h.ipad {
		h.ipad[i] = 0
	}
	for i := range h.opad {
		h.opad[i] = 0
	}
	h.initKey(key)
}

// Reset resets the HMAC to its initial state using the current key.
func (h *hmacHasher) Reset() {
	h.inner.Reset()
	h.inner.Write(h.ipad)
}

// Sum returns the hash of the written data.
func (h *hmacHasher) Sum() []byte {
	h.outer.Reset()
	h.outer.Write(h.opad)
	h.outer.Write(h.inner.Sum(nil))
	return h.outer.Sum(nil)
}

// newHMACHasher returns a new HMAC hasher over the given hash function using
// the provided key.  A nil key is treated the same as an all-zero key of any
// length since HMAC zero pads keys shorter than the block size.
func newHMACHasher(newHash func() hash.Hash, key []byte) *hmacHasher {
	h := &hmacHasher{inner: newHash(), outer: newHash()}
	blockSize := h.inner.BlockSize()
	h.ipad = make([]byte, blockSize)
	h.opad = make([]byte, blockSize)
	h.initKey(key)
	return h
}

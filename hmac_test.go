// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rfc6979

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"testing"

	"golang.org/x/crypto/sha3"
)

// testPattern returns n bytes of a fixed, non-trivial pattern so the tests
// are deterministic without being all zero.
func testPattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*7 + 3)
	}
	return b
}

// refHMAC computes the expected HMAC result using the standard library.
func refHMAC(newHash func() hash.Hash, key, msg []byte) []byte {
	mac := hmac.New(newHash, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

// TestHMACHasher ensures the resettable HMAC implementation produces the same
// results as the standard library implementation for a variety of hash
// functions, key lengths, and message lengths, including keys longer than the
// hash block size which must be hashed down first.
func TestHMACHasher(t *testing.T) {
	hashes := []struct {
		name    string
		newHash func() hash.Hash
	}{
		{"SHA-256", sha256.New},
		{"SHA-384", sha512.New384},
		{"SHA-512", sha512.New},
		{"SHA3-256", sha3.New256},
	}
	keyLens := []int{0, 1, 20, 32, 48, 64, 128, 200}
	msgLens := []int{0, 1, 31, 32, 33, 100}

	for _, th := range hashes {
		for _, keyLen := range keyLens {
			for _, msgLen := range msgLens {
				key := testPattern(keyLen)
				msg := testPattern(msgLen)
				want := refHMAC(th.newHash, key, msg)

				h := newHMACHasher(th.newHash, key)
				h.Write(msg)
				if got := h.Sum(); !bytes.Equal(got, want) {
					t.Errorf("%s key len %d msg len %d: mismatch -- got %x, "+
						"want %x", th.name, keyLen, msgLen, got, want)
				}
			}
		}
	}
}

// TestHMACHasherReset ensures resetting an instance with the same key behaves
// like a fresh instance and that multiple sums over split writes match a
// single write.
func TestHMACHasherReset(t *testing.T) {
	key := testPattern(32)
	msg := testPattern(90)
	want := refHMAC(sha256.New, key, msg)

	h := newHMACHasher(sha256.New, key)
	h.Write(testPattern(13)) // poison the running state
	h.Reset()
	h.Write(msg[:40])
	h.Write(msg[40:])
	if got := h.Sum(); !bytes.Equal(got, want) {
		t.Fatalf("after reset: mismatch -- got %x, want %x", got, want)
	}

	// A second reset and sum over the same data must reproduce the result.
	h.Reset()
	h.Write(msg)
	if got := h.Sum(); !bytes.Equal(got, want) {
		t.Fatalf("second reset: mismatch -- got %x, want %x", got, want)
	}
}

// TestHMACHasherResetKey ensures rekeying an existing instance behaves
// identically to creating a new instance with the new key, including when
// switching between keys shorter and longer than the block size.
func TestHMACHasherResetKey(t *testing.T) {
	msg := testPattern(64)
	keys := [][]byte{
		testPattern(32),
		testPattern(7),
		testPattern(150), // longer than the SHA-256 block size
		nil,
		testPattern(64),
	}

	h := newHMACHasher(sha256.New, keys[0])
	for i, key := range keys {
		if i != 0 {
			h.ResetKey(key)
		}
		h.Write(msg)
		want := refHMAC(sha256.New, key, msg)
		if got := h.Sum(); !bytes.Equal(got, want) {
			t.Fatalf("key #%d: mismatch -- got %x, want %x", i, got, want)
		}
		h.Reset()
	}
}

// TestHMACHasherNilKey ensures a nil key produces the same result as an
// explicit all-zero key, which the generator relies on for its initial state.
func TestHMACHasherNilKey(t *testing.T) {
	msg := testPattern(32)
	zeroKey := make([]byte, sha256.Size)

	h := newHMACHasher(sha256.New, nil)
	h.Write(msg)
	want := refHMAC(sha256.New, zeroKey, msg)
	if got := h.Sum(); !bytes.Equal(got, want) {
		t.Fatalf("nil key: mismatch -- got %x, want %x", got, want)
	}
}

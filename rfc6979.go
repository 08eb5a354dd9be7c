// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rfc6979

import (
	"fmt"
	"hash"
)

// GenerateK deterministically derives an ephemeral nonce k in the range
// [1, n-1] according to RFC 6979, where n is the group order encoded by the
// order parameter.  It is suitable for producing the per-signature secret
// required by DSA and ECDSA-style signature schemes without an external
// random source.
//
// The private key must be the same length as the order.  The digest is the
// hash of the message being signed and must be exactly one output of the
// provided hash function; when the hash is wider than the group order, the
// caller is responsible for having already reduced it per the bit-length
// rules in section 2.3 of the RFC.  A violation of either length contract
// returns an error with kind ErrInvalidInputLength.
//
// The optional extra data is mixed into the derivation per section 3.6 of the
// RFC so that distinct uses of the same key and message produce unrelated
// nonces.  It may be nil, which derives the same nonce as empty extra data.
//
// The order must encode an integer greater than one, since no valid nonce
// exists otherwise.
//
// The returned nonce has the same length as the order.  Identical inputs
// always derive an identical nonce.
func GenerateK(newHash func() hash.Hash, privKey, order, digest, extra []byte) ([]byte, error) {
	if len(order) == 0 {
		str := "modulus must not be empty"
		return nil, makeError(ErrInvalidInputLength, str)
	}
	if len(privKey) != len(order) {
		str := fmt.Sprintf("private key is %d bytes, but the modulus requires "+
			"%d bytes", len(privKey), len(order))
		return nil, makeError(ErrInvalidInputLength, str)
	}
	if hashLen := newHash().Size(); len(digest) != hashLen {
		str := fmt.Sprintf("digest is %d bytes, but the hash function "+
			"produces %d bytes", len(digest), hashLen)
		return nil, makeError(ErrInvalidInputLength, str)
	}

	// Steps B-G per section 3.2.
	//
	// Instantiate the generator with the private key as the entropy input,
	// the message digest as the nonce, and any caller-provided extra data as
	// the personalization string.  The generator state lives only for the
	// duration of this call and is never shared.
	drbg := NewHMACDRBG(newHash, privKey, digest, extra)

	// Step H per section 3.2.
	//
	// Produce candidates of the same length as the modulus and accept the
	// first one whose big-endian integer value lies in [1, n-1].  Each fill
	// ends with an empty state update, which is exactly the reseed the RFC
	// prescribes between retries, so a rejected candidate only requires
	// filling again.
	//
	// The candidate space is exponentially larger than the rejection region
	// for any real group order, so in practice this accepts within an
	// iteration or two.
	k := make([]byte, len(order))
	zero := make([]byte, len(order))
	for {
		drbg.FillBytes(k)

		// Accept when 1 <= k < n.  Both comparisons always run to
		// completion so the check reveals nothing about the candidate
		// through timing.
		if ctLt(k, order)&(ctEq(k, zero)^1) == 1 {
			return k, nil
		}
	}
}

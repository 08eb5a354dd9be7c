// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package rfc6979 implements deterministic generation of ephemeral nonces for
DSA and ECDSA-style signature schemes in pure Go.

Signature schemes in the DSA family require a secret per-signature nonce k
chosen uniformly from [1, n-1], where n is the order of the underlying group.
Reusing a nonce, or even leaking a few bits of one, allows full recovery of
the private key.  RFC 6979 removes the dependency on an external random source
by deriving the nonce deterministically from the private key and the message
digest, which makes accidental nonce reuse impossible while keeping signatures
reproducible for testing and audit.

An overview of the features provided by this package are as follows:

  - Deterministic nonce derivation per RFC 6979 for any group order size
  - Pluggable hash function support for any hash.Hash implementation
  - Optional additional data mixed into the derivation per RFC 6979 section 3.6
  - An HMAC-based deterministic random bit generator per NIST SP 800-90A
    section 10.1.2 that is also usable on its own
  - Constant-time acceptance checks so the rejection-sampling loop does not
    leak information about the candidate magnitude through timing
  - A resettable HMAC implementation that caches the padded key schedule to
    avoid recomputing it on every invocation within one derivation

The primary entry point is GenerateK, which accepts the private key, the group
order, the (already reduced) message digest, and optional extra entropy, and
returns a nonce in [1, n-1] encoded as a fixed-length big-endian byte string.
The package performs no elliptic curve or modular arithmetic; byte strings are
only ever interpreted as big-endian unsigned integers for comparison, so it is
usable with any group a caller can describe by its order.

This package does not provide a general purpose CSPRNG, a key derivation
function, or any signing protocol.  Those belong to the consuming application.

A comprehensive suite of tests is provided to ensure proper functionality,
including the known-answer vectors published in RFC 6979 and differential
tests against independent implementations.
*/
package rfc6979

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package crypto holds the hashing primitives shared by address derivation
// and transaction signing.
package crypto

import "golang.org/x/crypto/blake2b"

const DigestLen = blake2b.Size256

// Blake2b256 returns the unkeyed BLAKE2b-256 hash of the concatenation of
// [parts].
func Blake2b256(parts ...[]byte) [DigestLen]byte {
	// New256 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New256(nil)
	for _, part := range parts {
		_, _ = h.Write(part)
	}
	var out [DigestLen]byte
	h.Sum(out[:0])
	return out
}

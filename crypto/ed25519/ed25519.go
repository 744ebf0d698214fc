// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"crypto/ed25519"
	"fmt"

	"github.com/hdevalence/ed25519consensus"

	"github.com/ava-labs/suimint/codec"
)

type (
	PublicKey  [ed25519.PublicKeySize]byte
	PrivateKey [ed25519.PrivateKeySize]byte
	Signature  [ed25519.SignatureSize]byte
)

// We use the ZIP-215 specification for ed25519 signature
// verification (https://zips.z.cash/zip-0215) because it provides
// an explicit validity criteria for signatures and is broadly compatible
// with signatures produced by almost all ed25519 implementations (which
// don't require canonically-encoded points).
const (
	PublicKeyLen  = ed25519.PublicKeySize
	PrivateKeyLen = ed25519.PrivateKeySize
	// PrivateKeySeedLen is defined because ed25519.PrivateKey
	// is formatted as privateKey = seed|publicKey. Keys are exchanged as
	// the seed alone.
	PrivateKeySeedLen = ed25519.SeedSize
	SignatureLen      = ed25519.SignatureSize
)

var (
	EmptyPublicKey  = PublicKey{}
	EmptyPrivateKey = PrivateKey{}
	EmptySignature  = Signature{}
)

// GeneratePrivateKey returns a random Ed25519 PrivateKey.
func GeneratePrivateKey() (PrivateKey, error) {
	_, k, err := ed25519.GenerateKey(nil)
	if err != nil {
		return EmptyPrivateKey, err
	}
	return PrivateKey(k), nil
}

// PrivateKeyFromSeed expands a 32 byte seed into a PrivateKey.
func PrivateKeyFromSeed(seed []byte) (PrivateKey, error) {
	if len(seed) != PrivateKeySeedLen {
		return EmptyPrivateKey, fmt.Errorf("%w: seed is %d bytes, expected %d", ErrInvalidPrivateKey, len(seed), PrivateKeySeedLen)
	}
	return PrivateKey(ed25519.NewKeyFromSeed(seed)), nil
}

// HexToKey converts a hex encoded 32 byte seed, optionally 0x prefixed, into
// a PrivateKey.
func HexToKey(s string) (PrivateKey, error) {
	seed, err := codec.LoadHex(s, -1)
	if err != nil {
		return EmptyPrivateKey, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return PrivateKeyFromSeed(seed)
}

// PublicKeyFromBytes copies [b] into a PublicKey. The all zero key is
// rejected.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != PublicKeyLen {
		return EmptyPublicKey, fmt.Errorf("%w: %d != %d", ErrInvalidPublicKey, len(b), PublicKeyLen)
	}
	pk := PublicKey(b)
	if pk == EmptyPublicKey {
		return EmptyPublicKey, fmt.Errorf("%w: empty", ErrInvalidPublicKey)
	}
	return pk, nil
}

// PublicKey returns a PublicKey associated with the Ed25519 PrivateKey p.
// The PublicKey is the last 32 bytes of p.
func (p PrivateKey) PublicKey() PublicKey {
	return PublicKey(p[PrivateKeySeedLen:])
}

// Seed returns the 32 byte seed p was expanded from.
func (p PrivateKey) Seed() []byte {
	seed := make([]byte, PrivateKeySeedLen)
	copy(seed, p[:PrivateKeySeedLen])
	return seed
}

// Sign returns a valid signature for msg using pk.
func Sign(msg []byte, pk PrivateKey) Signature {
	sig := ed25519.Sign(pk[:], msg)
	return Signature(sig)
}

// Verify returns whether s is a valid signature of msg by p.
func Verify(msg []byte, p PublicKey, s Signature) bool {
	return ed25519consensus.Verify(p[:], msg, s[:])
}

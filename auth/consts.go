// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

// Signature scheme flags. The flag is the first byte of a serialized
// signature and also prefixes the public key when deriving an address, so
// the values are fixed by the chain and must never be renumbered.
const (
	ED25519ID   uint8 = 0x00
	SECP256K1ID uint8 = 0x01
	SECP256R1ID uint8 = 0x02
	MultiSigID  uint8 = 0x03
	BLSID       uint8 = 0x04
	ZkLoginID   uint8 = 0x05

	ED25519Key   = "ed25519"
	Secp256k1Key = "secp256k1"
	Secp256r1Key = "secp256r1"
)

// SchemeName returns a human readable name for a signature scheme flag.
func SchemeName(typeID uint8) string {
	switch typeID {
	case ED25519ID:
		return ED25519Key
	case SECP256K1ID:
		return Secp256k1Key
	case SECP256R1ID:
		return Secp256r1Key
	case MultiSigID:
		return "multisig"
	case BLSID:
		return "bls12381"
	case ZkLoginID:
		return "zklogin"
	default:
		return "unknown"
	}
}

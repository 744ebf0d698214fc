// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "encoding/hex"

const AddressLen = 32

// Address identifies both accounts and objects. Account addresses are
// derived from a public key; object addresses are assigned by the chain.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// ParseAddress decodes a 32 byte hex address, with or without the 0x prefix.
func ParseAddress(s string) (Address, error) {
	b, err := LoadHex(s, AddressLen)
	if err != nil {
		return EmptyAddress, err
	}
	return Address(b), nil
}

// MustParseAddress is like ParseAddress but panics on malformed input. It
// is only meant for package level constants.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return "0x" + a.Hex()
}

// Hex returns the lowercase hex encoding of a without a prefix.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// MarshalText returns the 0x prefixed hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a hex-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Address) Marshal(p *Packer) {
	p.PackAddress(a)
}

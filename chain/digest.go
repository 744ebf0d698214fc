// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/ava-labs/suimint/crypto"
)

// Digest is a 32 byte content hash, rendered in base-58.
type Digest [crypto.DigestLen]byte

var EmptyDigest = Digest{}

// ParseDigest decodes a base-58 digest.
func ParseDigest(s string) (Digest, error) {
	// base58.Decode returns an empty slice for any character outside the
	// alphabet.
	b := base58.Decode(s)
	if len(b) != crypto.DigestLen {
		return EmptyDigest, fmt.Errorf("%w: %q decodes to %d bytes", ErrInvalidDigest, s, len(b))
	}
	return Digest(b), nil
}

func (d Digest) String() string {
	return base58.Encode(d[:])
}

func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

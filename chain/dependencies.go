// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/suimint/codec"
)

type Auth interface {
	// GetTypeID returns the signature scheme flag. It is the first byte of
	// the serialized signature.
	GetTypeID() uint8

	// Address is the account that produced the signature. It must equal the
	// transaction sender.
	Address() codec.Address

	// Verify checks the signature against the signing digest [msg].
	Verify(ctx context.Context, msg []byte) error

	// Bytes returns the serialized signature: flag, signature, public key.
	Bytes() []byte

	// Base64 returns Bytes in the transport encoding the fullnode accepts.
	Base64() string
}

type AuthFactory interface {
	// Sign signs the signing digest [msg].
	Sign(msg []byte) (Auth, error)
	Address() codec.Address
}

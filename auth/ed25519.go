// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/ava-labs/suimint/chain"
	"github.com/ava-labs/suimint/codec"
	"github.com/ava-labs/suimint/crypto"
	"github.com/ava-labs/suimint/crypto/ed25519"
)

var _ chain.Auth = (*ED25519)(nil)

// ED25519Size is the length of a serialized signature:
// flag | signature | public key.
const ED25519Size = 1 + ed25519.SignatureLen + ed25519.PublicKeyLen

// ED25519 is a signature envelope that carries everything a verifier needs:
// the scheme flag, the signature over a signing digest and the signer's
// public key.
type ED25519 struct {
	Signer    ed25519.PublicKey `json:"signer"`
	Signature ed25519.Signature `json:"signature"`

	addr codec.Address
}

func (d *ED25519) address() codec.Address {
	if d.addr == codec.EmptyAddress {
		d.addr = NewED25519Address(d.Signer)
	}
	return d.addr
}

func (*ED25519) GetTypeID() uint8 {
	return ED25519ID
}

func (d *ED25519) Address() codec.Address {
	return d.address()
}

// Verify checks the signature against [msg], which must be the signing
// digest and not the raw transaction bytes.
func (d *ED25519) Verify(_ context.Context, msg []byte) error {
	if !ed25519.Verify(msg, d.Signer, d.Signature) {
		return crypto.ErrInvalidSignature
	}
	return nil
}

func (*ED25519) Size() int {
	return ED25519Size
}

func (d *ED25519) Bytes() []byte {
	b := make([]byte, ED25519Size)
	b[0] = ED25519ID
	copy(b[1:], d.Signature[:])
	copy(b[1+ed25519.SignatureLen:], d.Signer[:])
	return b
}

// Base64 returns the serialized envelope in the form the fullnode accepts.
func (d *ED25519) Base64() string {
	return base64.StdEncoding.EncodeToString(d.Bytes())
}

func UnmarshalED25519(bytes []byte) (*ED25519, error) {
	if len(bytes) != ED25519Size {
		return nil, fmt.Errorf("%w: ed25519 signature size %d != %d", ErrInvalidSignatureSize, len(bytes), ED25519Size)
	}
	if bytes[0] != ED25519ID {
		return nil, fmt.Errorf("%w: %d (%s) != %d", ErrUnexpectedScheme, bytes[0], SchemeName(bytes[0]), ED25519ID)
	}

	signer, err := ed25519.PublicKeyFromBytes(bytes[1+ed25519.SignatureLen:])
	if err != nil {
		return nil, err
	}
	d := ED25519{Signer: signer}
	copy(d.Signature[:], bytes[1:])
	if d.Signature == ed25519.EmptySignature {
		return nil, fmt.Errorf("%w: empty", crypto.ErrInvalidSignature)
	}
	return &d, nil
}

// ParseSignature decodes a base64 serialized signature envelope.
func ParseSignature(s string) (*ED25519, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return UnmarshalED25519(b)
}

var _ chain.AuthFactory = (*ED25519Factory)(nil)

// ED25519Factory owns a private key for the lifetime of a signing session.
type ED25519Factory struct {
	priv ed25519.PrivateKey
}

func NewED25519Factory(priv ed25519.PrivateKey) *ED25519Factory {
	return &ED25519Factory{priv}
}

func (d *ED25519Factory) Sign(msg []byte) (chain.Auth, error) {
	sig := ed25519.Sign(msg, d.priv)
	return &ED25519{Signer: d.priv.PublicKey(), Signature: sig}, nil
}

func (d *ED25519Factory) Address() codec.Address {
	return NewED25519Address(d.priv.PublicKey())
}

func (d *ED25519Factory) PublicKey() ed25519.PublicKey {
	return d.priv.PublicKey()
}

// NewED25519Address derives an account address by hashing the scheme flag
// followed by the public key.
func NewED25519Address(pk ed25519.PublicKey) codec.Address {
	return codec.Address(crypto.Blake2b256([]byte{ED25519ID}, pk[:]))
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/ava-labs/suimint/codec"
	"github.com/ava-labs/suimint/crypto"
)

// TransactionData tags, in wire order.
const TransactionDataV1ID uint8 = 0

// TransactionData is what a sender signs. V1 is the only version.
type TransactionData struct {
	V1 *TransactionDataV1
}

type TransactionDataV1 struct {
	Kind       TransactionKind
	Sender     codec.Address
	GasData    GasData
	Expiration TransactionExpiration
}

func NewTx(v1 *TransactionDataV1) *TransactionData {
	return &TransactionData{V1: v1}
}

func (t *TransactionData) Marshal(p *codec.Packer) {
	if t.V1 == nil {
		p.AddErr(fmt.Errorf("%w: transaction data", codec.ErrFieldNotPopulated))
		return
	}
	p.PackVariant(TransactionDataV1ID)
	t.V1.Marshal(p)
}

func (t *TransactionDataV1) Marshal(p *codec.Packer) {
	p.Pack(t.Kind)
	p.PackAddress(t.Sender)
	t.GasData.Marshal(p)
	p.Pack(t.Expiration)
}

// Verify checks the invariants the fullnode enforces on the transaction
// shape before it is signed.
func (t *TransactionData) Verify() error {
	if t.V1 == nil {
		return fmt.Errorf("%w: transaction data", codec.ErrFieldNotPopulated)
	}
	if codec.IsNil(t.V1.Kind) {
		return ErrMissingKind
	}
	if codec.IsNil(t.V1.Expiration) {
		return ErrMissingExpiration
	}
	return t.V1.Kind.Verify()
}

// Bytes returns the canonical serialization of t.
func (t *TransactionData) Bytes() ([]byte, error) {
	return codec.Marshal(t)
}

// Digest returns the transaction digest the chain uses to identify t.
func (t *TransactionData) Digest() (Digest, error) {
	b, err := t.Bytes()
	if err != nil {
		return EmptyDigest, err
	}
	return TransactionDigest(b), nil
}

// TransactionDigest computes the digest of serialized transaction data.
func TransactionDigest(txBytes []byte) Digest {
	return Digest(crypto.Blake2b256([]byte(TransactionDigestPrefix), txBytes))
}

// Sign serializes t, signs its intent digest with [factory] and returns the
// pair the fullnode expects for execution.
func (t *TransactionData) Sign(factory AuthFactory) (*SignedTransaction, error) {
	if err := t.Verify(); err != nil {
		return nil, err
	}
	if signer := factory.Address(); signer != t.V1.Sender {
		return nil, fmt.Errorf("%w: %s != %s", ErrSenderMismatch, signer, t.V1.Sender)
	}
	txBytes, err := t.Bytes()
	if err != nil {
		return nil, err
	}
	msg := SigningDigest(TransactionDataIntent, txBytes)
	auth, err := factory.Sign(msg[:])
	if err != nil {
		return nil, err
	}
	return &SignedTransaction{
		Bytes:  txBytes,
		Auth:   auth,
		Digest: TransactionDigest(txBytes),
	}, nil
}

// SignedTransaction is the serialized transaction together with the
// sender's signature.
type SignedTransaction struct {
	Bytes  []byte
	Auth   Auth
	Digest Digest
}

// TxBytes returns the serialized transaction in base64.
func (s *SignedTransaction) TxBytes() string {
	return base64.StdEncoding.EncodeToString(s.Bytes)
}

// Signatures returns the serialized signatures in base64.
func (s *SignedTransaction) Signatures() []string {
	return []string{s.Auth.Base64()}
}

// Verify checks the signature against the transaction bytes.
func (s *SignedTransaction) Verify(ctx context.Context) error {
	msg := SigningDigest(TransactionDataIntent, s.Bytes)
	return s.Auth.Verify(ctx, msg[:])
}

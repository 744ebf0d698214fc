// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/suimint/chain"
	"github.com/ava-labs/suimint/codec"
)

// Request is a mint as configured by the user.
type Request struct {
	Price     string
	SaleType  string
	Count     string
	Cap       codec.Address
	Gas       codec.Address
	Package   codec.Address
	GasBudget uint64
}

// Prepared is a signed transaction ready for submission.
type Prepared struct {
	Tx     *chain.TransactionData
	Signed *chain.SignedTransaction
	Digest chain.Digest
}

// Minter runs the mint stages in order against a single fullnode. Any
// failure aborts the remaining stages.
type Minter struct {
	log     logging.Logger
	client  Client
	factory chain.AuthFactory
}

func NewMinter(log logging.Logger, client Client, factory chain.AuthFactory) *Minter {
	return &Minter{
		log:     log,
		client:  client,
		factory: factory,
	}
}

// Address is the sender of every transaction the Minter signs.
func (m *Minter) Address() codec.Address {
	return m.factory.Address()
}

// Prepare fetches the cap and gas objects and the gas price, then builds
// and signs the mint transaction without submitting it.
func (m *Minter) Prepare(ctx context.Context, req *Request) (*Prepared, error) {
	objects, err := m.client.MultiGetObjects(ctx, []codec.Address{req.Cap, req.Gas})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch objects: %w", err)
	}
	if len(objects) != 2 {
		return nil, fmt.Errorf("%w: requested 2 objects, received %d", ErrMissingObject, len(objects))
	}
	capObj, err := SharedObjectFromData(objects[0])
	if err != nil {
		return nil, fmt.Errorf("failed to load cap: %w", err)
	}
	if capObj.ID != req.Cap {
		return nil, fmt.Errorf("%w: cap %s != %s", ErrObjectMismatch, capObj.ID, req.Cap)
	}
	gas, err := ObjectRefFromData(objects[1])
	if err != nil {
		return nil, fmt.Errorf("failed to load gas coin: %w", err)
	}
	if gas.ObjectID != req.Gas {
		return nil, fmt.Errorf("%w: gas coin %s != %s", ErrObjectMismatch, gas.ObjectID, req.Gas)
	}
	m.log.Debug("fetched objects",
		zap.Stringer("cap", capObj.ID),
		zap.Uint64("capInitialSharedVersion", capObj.InitialSharedVersion),
		zap.Stringer("gas", gas.ObjectID),
		zap.Uint64("gasVersion", gas.Version),
	)

	gasPrice, err := m.client.GetReferenceGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gas price: %w", err)
	}
	m.log.Debug("fetched gas price", zap.Uint64("gasPrice", gasPrice))

	tx, err := BuildMintTransaction(&MintArgs{
		Price:     req.Price,
		SaleType:  req.SaleType,
		Count:     req.Count,
		Cap:       capObj,
		Gas:       gas,
		GasPrice:  gasPrice,
		GasBudget: req.GasBudget,
		Package:   req.Package,
		Sender:    m.factory.Address(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction: %w", err)
	}

	signed, err := tx.Sign(m.factory)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	m.log.Info("signed transaction",
		zap.Stringer("sender", m.factory.Address()),
		zap.Stringer("digest", signed.Digest),
		zap.Int("size", len(signed.Bytes)),
	)
	return &Prepared{
		Tx:     tx,
		Signed: signed,
		Digest: signed.Digest,
	}, nil
}

// Mint prepares the transaction and submits it. The fullnode's response is
// returned uninterpreted.
func (m *Minter) Mint(ctx context.Context, req *Request) (json.RawMessage, error) {
	prepared, err := m.Prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	return m.Submit(ctx, prepared)
}

// Submit sends a prepared transaction to the fullnode.
func (m *Minter) Submit(ctx context.Context, prepared *Prepared) (json.RawMessage, error) {
	resp, err := m.client.ExecuteTransactionBlock(ctx, prepared.Signed.TxBytes(), prepared.Signed.Signatures())
	if err != nil {
		return nil, fmt.Errorf("failed to submit transaction %s: %w", prepared.Digest, err)
	}
	m.log.Info("submitted transaction", zap.Stringer("digest", prepared.Digest))
	return resp, nil
}

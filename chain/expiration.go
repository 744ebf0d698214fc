// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/ava-labs/suimint/codec"

// TransactionExpiration tags, in wire order.
const (
	NoExpirationID uint8 = iota
	EpochExpirationID
)

type TransactionExpiration interface {
	codec.Marshaler

	GetTypeID() uint8
	isExpiration()
}

var (
	_ TransactionExpiration = NoExpiration{}
	_ TransactionExpiration = EpochExpiration{}
)

// NoExpiration lets the transaction execute in any epoch.
type NoExpiration struct{}

func (NoExpiration) GetTypeID() uint8 { return NoExpirationID }

func (NoExpiration) Marshal(p *codec.Packer) {
	p.PackVariant(NoExpirationID)
}

func (NoExpiration) isExpiration() {}

// EpochExpiration rejects the transaction after [Epoch].
type EpochExpiration struct {
	Epoch uint64
}

func (EpochExpiration) GetTypeID() uint8 { return EpochExpirationID }

func (e EpochExpiration) Marshal(p *codec.Packer) {
	p.PackVariant(EpochExpirationID)
	p.PackUint64(e.Epoch)
}

func (EpochExpiration) isExpiration() {}

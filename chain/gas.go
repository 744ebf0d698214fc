// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/ava-labs/suimint/codec"

// GasData describes how a transaction pays for itself. Payment coins are
// merged into the gas coin before execution.
type GasData struct {
	Payment []ObjectRef
	Owner   codec.Address
	Price   uint64
	Budget  uint64
}

func (g *GasData) Marshal(p *codec.Packer) {
	codec.PackSlice(p, g.Payment)
	p.PackAddress(g.Owner)
	p.PackUint64(g.Price)
	p.PackUint64(g.Budget)
}

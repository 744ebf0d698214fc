// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import (
	"context"
	"encoding/json"

	"github.com/ava-labs/suimint/codec"
	"github.com/ava-labs/suimint/rpc"
)

//go:generate go run go.uber.org/mock/mockgen -package=${GOPACKAGE} -destination=mock_client.go . Client

// Client is the subset of the fullnode API a Minter needs.
type Client interface {
	MultiGetObjects(ctx context.Context, ids []codec.Address) ([]*rpc.ObjectData, error)
	GetReferenceGasPrice(ctx context.Context) (uint64, error)
	ExecuteTransactionBlock(ctx context.Context, txBytes string, signatures []string) (json.RawMessage, error)
}

var _ Client = (*rpc.JSONRPCClient)(nil)

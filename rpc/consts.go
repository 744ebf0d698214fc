// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "strings"

const (
	MainnetURL = "https://fullnode.mainnet.sui.io/"
	TestnetURL = "https://fullnode.testnet.sui.io/"
	DevnetURL  = "https://fullnode.devnet.sui.io/"

	MultiGetObjectsMethod         = "sui_multiGetObjects"
	GetReferenceGasPriceMethod    = "suix_getReferenceGasPrice"
	ExecuteTransactionBlockMethod = "sui_executeTransactionBlock"

	// MaxObjectsPerRequest is the fullnode's limit on ids per
	// sui_multiGetObjects call.
	MaxObjectsPerRequest = 50
)

var networks = map[string]string{
	"mainnet": MainnetURL,
	"testnet": TestnetURL,
	"devnet":  DevnetURL,
}

// ResolveURL returns the public fullnode of the network named [s]. Any other
// value is returned unchanged.
func ResolveURL(s string) string {
	if url, ok := networks[strings.ToLower(s)]; ok {
		return url
	}
	return s
}

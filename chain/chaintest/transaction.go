// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaintest

import (
	"bytes"

	"github.com/ava-labs/suimint/chain"
	"github.com/ava-labs/suimint/codec"
)

var (
	TestPackage  = codec.Address{0xaa}
	TestCap      = codec.Address{0xca}
	TestGasCoin  = codec.Address{0x9a}
	TestGasPrice = uint64(750)
	TestBudget   = uint64(10_000_000)
	TestDigest   = bytes.Repeat([]byte{0x11}, 32)
)

// NewTestTransaction returns a valid transaction shaped like a launchpad
// mint: split a coin off the gas coin and hand it to a Move call.
func NewTestTransaction(sender codec.Address) *chain.TransactionData {
	return chain.NewTx(&chain.TransactionDataV1{
		Kind: &chain.ProgrammableTransaction{
			Inputs: []chain.CallArg{
				chain.PureUint64(100),
				chain.PureUint64(1),
				chain.NewSharedObject(TestCap, 42, true),
				chain.PureUint64(5),
				chain.ClockInput(),
			},
			Commands: []chain.Command{
				&chain.SplitCoins{
					Coin:    chain.GasCoin{},
					Amounts: []chain.Argument{chain.Input{Index: 0}},
				},
				&chain.ProgrammableMoveCall{
					Package:  TestPackage,
					Module:   "bluemove_launchpad",
					Function: "mint_with_quantity",
					Args: []chain.Argument{
						chain.NestedResult{Command: 0, Result: 0},
						chain.Input{Index: 1},
						chain.Input{Index: 2},
						chain.Input{Index: 3},
						chain.Input{Index: 4},
					},
				},
			},
		},
		Sender: sender,
		GasData: chain.GasData{
			Payment: []chain.ObjectRef{{
				ObjectID: TestGasCoin,
				Version:  7,
				Digest:   TestDigest,
			}},
			Owner:  sender,
			Price:  TestGasPrice,
			Budget: TestBudget,
		},
		Expiration: chain.NoExpiration{},
	})
}

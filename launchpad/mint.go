// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import (
	"fmt"
	"strconv"

	"github.com/ava-labs/suimint/chain"
	"github.com/ava-labs/suimint/codec"
)

// MintArgs is everything needed to build a mint transaction. Price, SaleType
// and Count are decimal strings as supplied by the user.
type MintArgs struct {
	Price    string
	SaleType string
	Count    string

	// Cap is the launchpad's shared cap object. It is always passed
	// mutably.
	Cap chain.SharedObject
	Gas chain.ObjectRef

	GasPrice  uint64
	GasBudget uint64

	Package codec.Address
	Sender  codec.Address
}

// BuildMintTransaction assembles a transaction that splits [args.Price]
// MIST off the gas coin and passes it to
// bluemove_launchpad::mint_with_quantity.
//
// When Count and SaleType are the same string, the count input is dropped
// and the call reuses the sale type input in its place.
func BuildMintTransaction(args *MintArgs) (*chain.TransactionData, error) {
	price, err := parseUint64("price", args.Price)
	if err != nil {
		return nil, err
	}
	saleType, err := parseUint64("sale_type", args.SaleType)
	if err != nil {
		return nil, err
	}

	inputs := []chain.CallArg{
		chain.PureUint64(price),
		chain.PureUint64(saleType),
		chain.NewSharedObject(args.Cap.ID, args.Cap.InitialSharedVersion, true),
	}
	countArg := chain.Input{Index: saleTypeInput}
	if args.Count != args.SaleType {
		count, err := parseUint64("count", args.Count)
		if err != nil {
			return nil, err
		}
		countArg = chain.Input{Index: uint16(len(inputs))}
		inputs = append(inputs, chain.PureUint64(count))
	}
	clockArg := chain.Input{Index: uint16(len(inputs))}
	inputs = append(inputs, chain.ClockInput())

	tx := chain.NewTx(&chain.TransactionDataV1{
		Kind: &chain.ProgrammableTransaction{
			Inputs: inputs,
			Commands: []chain.Command{
				&chain.SplitCoins{
					Coin:    chain.GasCoin{},
					Amounts: []chain.Argument{chain.Input{Index: priceInput}},
				},
				&chain.ProgrammableMoveCall{
					Package:  args.Package,
					Module:   ModuleName,
					Function: FunctionName,
					Args: []chain.Argument{
						chain.NestedResult{Command: 0, Result: 0},
						chain.Input{Index: saleTypeInput},
						chain.Input{Index: capInput},
						countArg,
						clockArg,
					},
				},
			},
		},
		Sender: args.Sender,
		GasData: chain.GasData{
			Payment: []chain.ObjectRef{args.Gas},
			Owner:   args.Sender,
			Price:   args.GasPrice,
			Budget:  args.GasBudget,
		},
		Expiration: chain.NoExpiration{},
	})
	if err := tx.Verify(); err != nil {
		return nil, err
	}
	return tx, nil
}

func parseUint64(name, s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %w", ErrInvalidNumber, name, s, err)
	}
	return v, nil
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/ava-labs/suimint/codec"

// Command tags, in wire order. Only the commands needed to pay for and call
// a Move function are modeled.
const (
	MoveCallID uint8 = iota
	TransferObjectsID
	SplitCoinsID
)

type Command interface {
	codec.Marshaler

	GetTypeID() uint8

	// Arguments returns every argument the command consumes, in wire order.
	Arguments() []Argument

	isCommand()
}

var (
	_ Command = (*ProgrammableMoveCall)(nil)
	_ Command = (*TransferObjects)(nil)
	_ Command = (*SplitCoins)(nil)
)

// ProgrammableMoveCall is the MoveCall command: it calls
// [Package]::[Module]::[Function].
type ProgrammableMoveCall struct {
	Package       codec.Address
	Module        string
	Function      string
	TypeArguments []TypeTag
	Args          []Argument
}

func (*ProgrammableMoveCall) GetTypeID() uint8 { return MoveCallID }

func (c *ProgrammableMoveCall) Arguments() []Argument { return c.Args }

func (c *ProgrammableMoveCall) Marshal(p *codec.Packer) {
	p.PackVariant(MoveCallID)
	p.PackAddress(c.Package)
	p.PackString(c.Module)
	p.PackString(c.Function)
	codec.PackSlice(p, c.TypeArguments)
	codec.PackSlice(p, c.Args)
}

func (*ProgrammableMoveCall) isCommand() {}

// TransferObjects sends [Objects] to the address held by [Address].
type TransferObjects struct {
	Objects []Argument
	Address Argument
}

func (*TransferObjects) GetTypeID() uint8 { return TransferObjectsID }

func (c *TransferObjects) Arguments() []Argument {
	args := make([]Argument, 0, len(c.Objects)+1)
	args = append(args, c.Objects...)
	return append(args, c.Address)
}

func (c *TransferObjects) Marshal(p *codec.Packer) {
	p.PackVariant(TransferObjectsID)
	codec.PackSlice(p, c.Objects)
	p.Pack(c.Address)
}

func (*TransferObjects) isCommand() {}

// SplitCoins splits one new coin per entry of [Amounts] off [Coin]. The new
// coins are the command's nested results, in order.
type SplitCoins struct {
	Coin    Argument
	Amounts []Argument
}

func (*SplitCoins) GetTypeID() uint8 { return SplitCoinsID }

func (c *SplitCoins) Arguments() []Argument {
	args := make([]Argument, 0, len(c.Amounts)+1)
	args = append(args, c.Coin)
	return append(args, c.Amounts...)
}

func (c *SplitCoins) Marshal(p *codec.Packer) {
	p.PackVariant(SplitCoinsID)
	p.Pack(c.Coin)
	codec.PackSlice(p, c.Amounts)
}

func (*SplitCoins) isCommand() {}

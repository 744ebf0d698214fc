// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/suimint/codec"
)

// Argument tags, in wire order.
const (
	GasCoinID uint8 = iota
	InputID
	ResultID
	NestedResultID
)

// Argument references a value available to a command: the gas coin, a
// transaction input or the output of an earlier command.
type Argument interface {
	codec.Marshaler
	fmt.Stringer

	GetTypeID() uint8
	isArgument()
}

var (
	_ Argument = GasCoin{}
	_ Argument = Input{}
	_ Argument = Result{}
	_ Argument = NestedResult{}
)

// GasCoin is the coin used to pay for gas.
type GasCoin struct{}

func (GasCoin) GetTypeID() uint8 { return GasCoinID }

func (GasCoin) Marshal(p *codec.Packer) {
	p.PackVariant(GasCoinID)
}

func (GasCoin) String() string { return "GasCoin" }

func (GasCoin) isArgument() {}

// Input references an entry of ProgrammableTransaction.Inputs.
type Input struct {
	Index uint16
}

func (Input) GetTypeID() uint8 { return InputID }

func (i Input) Marshal(p *codec.Packer) {
	p.PackVariant(InputID)
	p.PackUint16(i.Index)
}

func (i Input) String() string { return fmt.Sprintf("Input(%d)", i.Index) }

func (Input) isArgument() {}

// Result references the sole output of an earlier command.
type Result struct {
	Command uint16
}

func (Result) GetTypeID() uint8 { return ResultID }

func (r Result) Marshal(p *codec.Packer) {
	p.PackVariant(ResultID)
	p.PackUint16(r.Command)
}

func (r Result) String() string { return fmt.Sprintf("Result(%d)", r.Command) }

func (Result) isArgument() {}

// NestedResult references output [Result] of the earlier command [Command].
type NestedResult struct {
	Command uint16
	Result  uint16
}

func (NestedResult) GetTypeID() uint8 { return NestedResultID }

func (n NestedResult) Marshal(p *codec.Packer) {
	p.PackVariant(NestedResultID)
	p.PackUint16(n.Command)
	p.PackUint16(n.Result)
}

func (n NestedResult) String() string {
	return fmt.Sprintf("NestedResult(%d,%d)", n.Command, n.Result)
}

func (NestedResult) isArgument() {}

// verifyArgument checks that [arg], used by command [command], only
// references inputs that exist and commands that come before it.
func verifyArgument(arg Argument, command int, numInputs int) error {
	switch a := arg.(type) {
	case nil:
		return fmt.Errorf("%w: command %d has a nil argument", ErrInvalidArgument, command)
	case GasCoin:
		return nil
	case Input:
		if int(a.Index) >= numInputs {
			return fmt.Errorf("%w: command %d references %s but there are %d inputs", ErrInvalidArgument, command, a, numInputs)
		}
	case Result:
		if int(a.Command) >= command {
			return fmt.Errorf("%w: command %d references %s", ErrInvalidArgument, command, a)
		}
	case NestedResult:
		if int(a.Command) >= command {
			return fmt.Errorf("%w: command %d references %s", ErrInvalidArgument, command, a)
		}
	default:
		return fmt.Errorf("%w: unknown argument %T", ErrInvalidArgument, arg)
	}
	return nil
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/suimint/codec"
)

// TransactionKind tags, in wire order. Only programmable transactions can
// be built by users.
const ProgrammableTransactionID uint8 = 0

type TransactionKind interface {
	codec.Marshaler

	GetTypeID() uint8
	Verify() error
	isTransactionKind()
}

var _ TransactionKind = (*ProgrammableTransaction)(nil)

// ProgrammableTransaction runs [Commands] in order. Commands read
// [Inputs] and the results of the commands before them.
type ProgrammableTransaction struct {
	Inputs   []CallArg
	Commands []Command
}

func (*ProgrammableTransaction) GetTypeID() uint8 { return ProgrammableTransactionID }

func (pt *ProgrammableTransaction) Marshal(p *codec.Packer) {
	p.PackVariant(ProgrammableTransactionID)
	codec.PackSlice(p, pt.Inputs)
	codec.PackSlice(p, pt.Commands)
}

// Verify checks that every input is populated, every Input argument is in
// range and every Result or NestedResult argument refers to an earlier
// command.
func (pt *ProgrammableTransaction) Verify() error {
	if len(pt.Inputs) > MaxInputs {
		return fmt.Errorf("%w: %d > %d", ErrTooManyInputs, len(pt.Inputs), MaxInputs)
	}
	if len(pt.Commands) > MaxCommands {
		return fmt.Errorf("%w: %d > %d", ErrTooManyCommands, len(pt.Commands), MaxCommands)
	}
	for i, input := range pt.Inputs {
		if codec.IsNil(input) {
			return fmt.Errorf("%w: input %d", codec.ErrFieldNotPopulated, i)
		}
		if obj, ok := input.(*Object); ok && codec.IsNil(obj.Arg) {
			return fmt.Errorf("%w: object input %d", codec.ErrFieldNotPopulated, i)
		}
	}
	for i, cmd := range pt.Commands {
		if codec.IsNil(cmd) {
			return fmt.Errorf("%w: command %d", codec.ErrFieldNotPopulated, i)
		}
		for _, arg := range cmd.Arguments() {
			if err := verifyArgument(arg, i, len(pt.Inputs)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (*ProgrammableTransaction) isTransactionKind() {}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/ava-labs/suimint/codec"

const (
	// ClockInitialSharedVersion is the version at which the clock object
	// became shared. It never changes.
	ClockInitialSharedVersion = 1

	// TransactionDigestPrefix is hashed in front of the serialized
	// transaction to compute its digest.
	TransactionDigestPrefix = "TransactionData::"

	// Argument indices are u16 on the wire.
	MaxInputs   = 1 << 16
	MaxCommands = 1 << 16
)

// ClockObjectID is the well-known shared clock object.
var ClockObjectID = codec.MustParseAddress("0x0000000000000000000000000000000000000000000000000000000000000006")

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	ByteLen   = 1
	BoolLen   = 1
	Uint16Len = 2
	Uint32Len = 4
	Uint64Len = 8

	// MaxULEB128Len is the number of bytes needed to encode the largest
	// uint64 with 7 payload bits per byte.
	MaxULEB128Len = 10

	MaxUint   = ^uint(0)
	MaxInt    = int(MaxUint >> 1)
	MaxUint64 = ^uint64(0)

	// MaxTransactionSize is the largest serialized transaction a fullnode
	// will accept.
	MaxTransactionSize = 128 * 1024

	// MistPerSui is the number of base units in one SUI.
	MistPerSui     = 1_000_000_000
	NativeDecimals = 9
)

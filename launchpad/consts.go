// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

const (
	ModuleName   = "bluemove_launchpad"
	FunctionName = "mint_with_quantity"
)

// Input positions that do not depend on whether the count input is present.
const (
	priceInput uint16 = iota
	saleTypeInput
	capInput
)

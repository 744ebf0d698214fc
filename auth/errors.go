// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import "errors"

var (
	ErrInvalidSignatureSize = errors.New("invalid signature size")
	ErrUnexpectedScheme     = errors.New("unexpected signature scheme")
)

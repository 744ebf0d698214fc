// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidTypeTag    = errors.New("invalid type tag")
	ErrInvalidDigest     = errors.New("invalid digest")
	ErrMissingKind       = errors.New("missing transaction kind")
	ErrMissingExpiration = errors.New("missing expiration")
	ErrSenderMismatch    = errors.New("signer does not match sender")
	ErrTooManyInputs     = errors.New("too many inputs")
	ErrTooManyCommands   = errors.New("too many commands")
)

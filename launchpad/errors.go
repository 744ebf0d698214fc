// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import "errors"

var (
	ErrInvalidNumber   = errors.New("invalid number")
	ErrObjectNotShared = errors.New("object is not shared")
	ErrMissingObject   = errors.New("missing object")
	ErrObjectMismatch  = errors.New("object id mismatch")
)

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "errors"

var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrTooManyObjects     = errors.New("too many objects")
	ErrUnexpectedResponse = errors.New("unexpected response")
	ErrUnknownOwner       = errors.New("unknown owner")
)

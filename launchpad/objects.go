// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import (
	"fmt"

	"github.com/ava-labs/suimint/chain"
	"github.com/ava-labs/suimint/rpc"
)

// SharedObjectFromData reads the initial shared version of a shared object.
func SharedObjectFromData(data *rpc.ObjectData) (chain.SharedObject, error) {
	if data == nil {
		return chain.SharedObject{}, ErrMissingObject
	}
	version, ok := data.Owner.IsShared()
	if !ok {
		if data.Owner == nil {
			return chain.SharedObject{}, fmt.Errorf("%w: %s has no owner", ErrObjectNotShared, data.ObjectID)
		}
		return chain.SharedObject{}, fmt.Errorf("%w: %s owned by %s", ErrObjectNotShared, data.ObjectID, data.Owner.Kind)
	}
	return chain.SharedObject{
		ID:                   data.ObjectID,
		InitialSharedVersion: version,
	}, nil
}

// ObjectRefFromData pins an object at the version the fullnode reported.
func ObjectRefFromData(data *rpc.ObjectData) (chain.ObjectRef, error) {
	if data == nil {
		return chain.ObjectRef{}, ErrMissingObject
	}
	version, err := parseUint64("version", data.Version)
	if err != nil {
		return chain.ObjectRef{}, err
	}
	digest, err := chain.ParseDigest(data.Digest)
	if err != nil {
		return chain.ObjectRef{}, err
	}
	return chain.ObjectRef{
		ObjectID: data.ObjectID,
		Version:  version,
		Digest:   digest[:],
	}, nil
}

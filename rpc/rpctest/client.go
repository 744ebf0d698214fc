// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpctest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ava-labs/suimint/codec"
	"github.com/ava-labs/suimint/rpc"
)

// Submission is a transaction received by ExecuteTransactionBlock.
type Submission struct {
	TxBytes    string
	Signatures []string
}

// Fullnode is an in-memory stand in for a Sui fullnode.
type Fullnode struct {
	lock sync.Mutex

	objects  map[codec.Address]*rpc.ObjectData
	gasPrice uint64
	response json.RawMessage

	Submissions []Submission
}

func NewFullnode(gasPrice uint64) *Fullnode {
	return &Fullnode{
		objects:  make(map[codec.Address]*rpc.ObjectData),
		gasPrice: gasPrice,
		response: json.RawMessage(`{}`),
	}
}

// AddShared registers a shared object.
func (f *Fullnode) AddShared(id codec.Address, version, initialSharedVersion uint64, digest string) {
	f.add(id, version, digest, &rpc.Owner{Kind: rpc.SharedOwnerKind, InitialSharedVersion: initialSharedVersion})
}

// AddOwned registers an object owned by [owner].
func (f *Fullnode) AddOwned(id codec.Address, version uint64, digest string, owner codec.Address) {
	f.add(id, version, digest, &rpc.Owner{Kind: rpc.AddressOwnerKind, Address: owner})
}

func (f *Fullnode) add(id codec.Address, version uint64, digest string, owner *rpc.Owner) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.objects[id] = &rpc.ObjectData{
		ObjectID: id,
		Version:  fmt.Sprintf("%d", version),
		Digest:   digest,
		Owner:    owner,
	}
}

// SetResponse sets the raw response returned for every submission.
func (f *Fullnode) SetResponse(resp json.RawMessage) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.response = resp
}

func (f *Fullnode) MultiGetObjects(_ context.Context, ids []codec.Address) ([]*rpc.ObjectData, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	objects := make([]*rpc.ObjectData, len(ids))
	for i, id := range ids {
		obj, ok := f.objects[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", rpc.ErrObjectNotFound, id)
		}
		copied := *obj
		objects[i] = &copied
	}
	return objects, nil
}

func (f *Fullnode) GetReferenceGasPrice(context.Context) (uint64, error) {
	return f.gasPrice, nil
}

func (f *Fullnode) ExecuteTransactionBlock(_ context.Context, txBytes string, signatures []string) (json.RawMessage, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.Submissions = append(f.Submissions, Submission{
		TxBytes:    txBytes,
		Signatures: signatures,
	})
	return f.response, nil
}

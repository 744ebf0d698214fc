// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"

	"github.com/ava-labs/suimint/codec"
	"github.com/ava-labs/suimint/consts"
)

// CallArg tags, in wire order.
const (
	PureArgID uint8 = iota
	ObjectArgID
)

// ObjectArg tags, in wire order.
const (
	ImmOrOwnedObjectID uint8 = iota
	SharedObjectID
)

// CallArg is a transaction input: either an already serialized value or an
// object.
type CallArg interface {
	codec.Marshaler

	GetTypeID() uint8
	isCallArg()
}

var (
	_ CallArg = (*Pure)(nil)
	_ CallArg = (*Object)(nil)
)

// Pure holds the BCS bytes of a value passed by value to a Move function.
type Pure struct {
	Bytes []byte
}

// PureUint64 returns a Pure input holding [v] as a little endian u64.
func PureUint64(v uint64) *Pure {
	b := make([]byte, consts.Uint64Len)
	binary.LittleEndian.PutUint64(b, v)
	return &Pure{Bytes: b}
}

func (*Pure) GetTypeID() uint8 { return PureArgID }

func (a *Pure) Marshal(p *codec.Packer) {
	p.PackVariant(PureArgID)
	p.PackBytes(a.Bytes)
}

func (*Pure) isCallArg() {}

// Object passes an object by reference.
type Object struct {
	Arg ObjectArg
}

func (*Object) GetTypeID() uint8 { return ObjectArgID }

func (a *Object) Marshal(p *codec.Packer) {
	p.PackVariant(ObjectArgID)
	p.Pack(a.Arg)
}

func (*Object) isCallArg() {}

type ObjectArg interface {
	codec.Marshaler

	GetTypeID() uint8
	isObjectArg()
}

var (
	_ ObjectArg = (*ImmOrOwnedObject)(nil)
	_ ObjectArg = (*SharedObject)(nil)
)

// ImmOrOwnedObject references an immutable object or one owned by the sender.
type ImmOrOwnedObject struct {
	Ref ObjectRef
}

func (*ImmOrOwnedObject) GetTypeID() uint8 { return ImmOrOwnedObjectID }

func (o *ImmOrOwnedObject) Marshal(p *codec.Packer) {
	p.PackVariant(ImmOrOwnedObjectID)
	o.Ref.Marshal(p)
}

func (*ImmOrOwnedObject) isObjectArg() {}

// SharedObject references a shared object. InitialSharedVersion must be the
// value reported by a fullnode for the object; a stale value makes the
// transaction invalid.
type SharedObject struct {
	ID                   codec.Address
	InitialSharedVersion uint64
	Mutable              bool
}

func (*SharedObject) GetTypeID() uint8 { return SharedObjectID }

func (o *SharedObject) Marshal(p *codec.Packer) {
	p.PackVariant(SharedObjectID)
	p.PackAddress(o.ID)
	p.PackUint64(o.InitialSharedVersion)
	p.PackBool(o.Mutable)
}

func (*SharedObject) isObjectArg() {}

// NewSharedObject wraps a shared object reference as a transaction input.
func NewSharedObject(id codec.Address, initialSharedVersion uint64, mutable bool) *Object {
	return &Object{Arg: &SharedObject{
		ID:                   id,
		InitialSharedVersion: initialSharedVersion,
		Mutable:              mutable,
	}}
}

// ClockInput returns the read-only clock object input.
func ClockInput() *Object {
	return NewSharedObject(ClockObjectID, ClockInitialSharedVersion, false)
}

// ObjectRef pins an object at a version. Digest is the content hash of the
// object at that version.
type ObjectRef struct {
	ObjectID codec.Address
	Version  uint64
	Digest   []byte
}

func (r ObjectRef) Marshal(p *codec.Packer) {
	p.PackAddress(r.ObjectID)
	p.PackUint64(r.Version)
	p.PackBytes(r.Digest)
}

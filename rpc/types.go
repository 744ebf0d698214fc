// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ava-labs/suimint/codec"
)

type GetObjectsOptions struct {
	ShowOwner bool `json:"showOwner"`
}

type ObjectResponse struct {
	Data  *ObjectData     `json:"data,omitempty"`
	Error json.RawMessage `json:"error,omitempty"`
}

// ObjectData is the fullnode's view of an object. Version is a decimal
// string and Digest is base-58.
type ObjectData struct {
	ObjectID codec.Address `json:"objectId"`
	Version  string        `json:"version"`
	Digest   string        `json:"digest"`
	Owner    *Owner        `json:"owner,omitempty"`
}

type OwnerKind uint8

const (
	AddressOwnerKind OwnerKind = iota
	ObjectOwnerKind
	SharedOwnerKind
	ImmutableOwnerKind
	UnknownOwnerKind
)

func (k OwnerKind) String() string {
	switch k {
	case AddressOwnerKind:
		return "AddressOwner"
	case ObjectOwnerKind:
		return "ObjectOwner"
	case SharedOwnerKind:
		return "Shared"
	case ImmutableOwnerKind:
		return "Immutable"
	default:
		return "Unknown"
	}
}

// Owner is decoded from one of
//
//	{"AddressOwner":"0x.."}
//	{"ObjectOwner":"0x.."}
//	{"Shared":{"initial_shared_version":N}}
//	"Immutable"
//
// Address is set for AddressOwner and ObjectOwner. InitialSharedVersion is
// set for Shared. Any other owner decodes to UnknownOwnerKind with the
// original JSON kept in Raw.
type Owner struct {
	Kind                 OwnerKind
	Address              codec.Address
	InitialSharedVersion uint64
	Raw                  json.RawMessage
}

func unknownOwner(b []byte) Owner {
	return Owner{Kind: UnknownOwnerKind, Raw: append(json.RawMessage(nil), b...)}
}

type sharedOwner struct {
	InitialSharedVersion uint64 `json:"initial_shared_version"`
}

type ownerJSON struct {
	AddressOwner *codec.Address `json:"AddressOwner,omitempty"`
	ObjectOwner  *codec.Address `json:"ObjectOwner,omitempty"`
	Shared       *sharedOwner   `json:"Shared,omitempty"`
}

func (o *Owner) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s != ImmutableOwnerKind.String() {
			*o = unknownOwner(b)
			return nil
		}
		*o = Owner{Kind: ImmutableOwnerKind}
		return nil
	}

	var raw ownerJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch {
	case raw.AddressOwner != nil:
		*o = Owner{Kind: AddressOwnerKind, Address: *raw.AddressOwner}
	case raw.ObjectOwner != nil:
		*o = Owner{Kind: ObjectOwnerKind, Address: *raw.ObjectOwner}
	case raw.Shared != nil:
		*o = Owner{Kind: SharedOwnerKind, InitialSharedVersion: raw.Shared.InitialSharedVersion}
	default:
		*o = unknownOwner(b)
	}
	return nil
}

func (o Owner) MarshalJSON() ([]byte, error) {
	switch o.Kind {
	case AddressOwnerKind:
		return json.Marshal(ownerJSON{AddressOwner: &o.Address})
	case ObjectOwnerKind:
		return json.Marshal(ownerJSON{ObjectOwner: &o.Address})
	case SharedOwnerKind:
		return json.Marshal(ownerJSON{Shared: &sharedOwner{InitialSharedVersion: o.InitialSharedVersion}})
	case ImmutableOwnerKind:
		return json.Marshal(ImmutableOwnerKind.String())
	case UnknownOwnerKind:
		if len(o.Raw) == 0 {
			return nil, fmt.Errorf("%w: no raw owner", ErrUnknownOwner)
		}
		return o.Raw, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownOwner, o.Kind)
	}
}

// IsShared reports whether the object is shared and, if so, the version at
// which it became shared.
func (o *Owner) IsShared() (uint64, bool) {
	if o == nil || o.Kind != SharedOwnerKind {
		return 0, false
	}
	return o.InitialSharedVersion, true
}

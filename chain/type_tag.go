// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
	"strings"

	"github.com/ava-labs/suimint/codec"
)

// TypeTag tags, in wire order. U16, U32 and U256 were added after Struct,
// which is why they are out of numeric order.
const (
	BoolTagID uint8 = iota
	U8TagID
	U64TagID
	U128TagID
	AddressTagID
	SignerTagID
	VectorTagID
	StructTagID
	U16TagID
	U32TagID
	U256TagID
)

// TypeTag is a Move type passed as a type argument.
type TypeTag interface {
	codec.Marshaler
	fmt.Stringer

	GetTypeID() uint8
	isTypeTag()
}

var (
	_ TypeTag = PrimitiveTag(0)
	_ TypeTag = (*VectorTag)(nil)
	_ TypeTag = (*StructTag)(nil)
)

// PrimitiveTag is any type tag without fields. Its value is its wire tag.
type PrimitiveTag uint8

const (
	BoolTag    = PrimitiveTag(BoolTagID)
	U8Tag      = PrimitiveTag(U8TagID)
	U16Tag     = PrimitiveTag(U16TagID)
	U32Tag     = PrimitiveTag(U32TagID)
	U64Tag     = PrimitiveTag(U64TagID)
	U128Tag    = PrimitiveTag(U128TagID)
	U256Tag    = PrimitiveTag(U256TagID)
	AddressTag = PrimitiveTag(AddressTagID)
	SignerTag  = PrimitiveTag(SignerTagID)
)

var primitiveNames = map[PrimitiveTag]string{
	BoolTag:    "bool",
	U8Tag:      "u8",
	U16Tag:     "u16",
	U32Tag:     "u32",
	U64Tag:     "u64",
	U128Tag:    "u128",
	U256Tag:    "u256",
	AddressTag: "address",
	SignerTag:  "signer",
}

func (t PrimitiveTag) GetTypeID() uint8 { return uint8(t) }

func (t PrimitiveTag) Marshal(p *codec.Packer) {
	if _, ok := primitiveNames[t]; !ok {
		p.AddErr(fmt.Errorf("%w: %d is not a primitive", ErrInvalidTypeTag, uint8(t)))
		return
	}
	p.PackVariant(uint8(t))
}

func (t PrimitiveTag) String() string {
	if name, ok := primitiveNames[t]; ok {
		return name
	}
	return fmt.Sprintf("invalid(%d)", uint8(t))
}

func (PrimitiveTag) isTypeTag() {}

// VectorTag is vector<Elem>.
type VectorTag struct {
	Elem TypeTag
}

func (*VectorTag) GetTypeID() uint8 { return VectorTagID }

func (t *VectorTag) Marshal(p *codec.Packer) {
	p.PackVariant(VectorTagID)
	p.Pack(t.Elem)
}

func (t *VectorTag) String() string {
	return fmt.Sprintf("vector<%s>", t.Elem)
}

func (*VectorTag) isTypeTag() {}

// StructTag is a fully qualified struct type, such as 0x2::sui::SUI.
type StructTag struct {
	Address    codec.Address
	Module     string
	Name       string
	TypeParams []TypeTag
}

func (*StructTag) GetTypeID() uint8 { return StructTagID }

func (t *StructTag) Marshal(p *codec.Packer) {
	p.PackVariant(StructTagID)
	p.PackAddress(t.Address)
	p.PackString(t.Module)
	p.PackString(t.Name)
	codec.PackSlice(p, t.TypeParams)
}

func (t *StructTag) String() string {
	var sb strings.Builder
	sb.WriteString(t.Address.String())
	sb.WriteString("::")
	sb.WriteString(t.Module)
	sb.WriteString("::")
	sb.WriteString(t.Name)
	if len(t.TypeParams) > 0 {
		params := make([]string, len(t.TypeParams))
		for i, param := range t.TypeParams {
			params[i] = param.String()
		}
		sb.WriteString("<")
		sb.WriteString(strings.Join(params, ", "))
		sb.WriteString(">")
	}
	return sb.String()
}

func (*StructTag) isTypeTag() {}

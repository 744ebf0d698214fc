// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/ava-labs/suimint/consts"
)

// Marshaler is implemented by every value that can be written to a Packer.
type Marshaler interface {
	Marshal(p *Packer)
}

// Packer writes values in canonical BCS form. Errors are sticky: once a
// write fails, every subsequent write is a no-op and Err reports the first
// failure.
type Packer struct {
	b       []byte
	maxSize int
	err     error
}

// NewWriter returns a Packer with [initial] bytes preallocated that refuses
// to grow beyond [limit] bytes.
func NewWriter(initial, limit int) *Packer {
	if initial > limit {
		initial = limit
	}
	return &Packer{
		b:       make([]byte, 0, initial),
		maxSize: limit,
	}
}

// Bytes returns the bytes written so far.
func (p *Packer) Bytes() []byte {
	return p.b
}

// Offset returns the number of bytes written so far.
func (p *Packer) Offset() int {
	return len(p.b)
}

// Err returns the first error encountered while packing.
func (p *Packer) Err() error {
	return p.err
}

// AddErr records [err] if no earlier error was recorded.
func (p *Packer) AddErr(err error) {
	if p.err == nil {
		p.err = err
	}
}

// reserve reports whether [n] more bytes fit under the size limit.
func (p *Packer) reserve(n int) bool {
	if p.err != nil {
		return false
	}
	if n < 0 || len(p.b)+n > p.maxSize {
		p.AddErr(fmt.Errorf("%w: %d + %d > %d", ErrSizeExceeded, len(p.b), n, p.maxSize))
		return false
	}
	return true
}

func (p *Packer) PackByte(b byte) {
	if !p.reserve(consts.ByteLen) {
		return
	}
	p.b = append(p.b, b)
}

func (p *Packer) PackBool(v bool) {
	if !p.reserve(consts.BoolLen) {
		return
	}
	if v {
		p.b = append(p.b, 1)
		return
	}
	p.b = append(p.b, 0)
}

func (p *Packer) PackUint16(v uint16) {
	if !p.reserve(consts.Uint16Len) {
		return
	}
	p.b = binary.LittleEndian.AppendUint16(p.b, v)
}

func (p *Packer) PackUint32(v uint32) {
	if !p.reserve(consts.Uint32Len) {
		return
	}
	p.b = binary.LittleEndian.AppendUint32(p.b, v)
}

func (p *Packer) PackUint64(v uint64) {
	if !p.reserve(consts.Uint64Len) {
		return
	}
	p.b = binary.LittleEndian.AppendUint64(p.b, v)
}

// PackULEB128 writes [v] as an unsigned base-128 varint: 7 data bits per
// byte, least significant group first, high bit set on every byte but the
// last. This is the layout of binary.AppendUvarint.
func (p *Packer) PackULEB128(v uint64) {
	if !p.reserve(ULEB128Len(v)) {
		return
	}
	p.b = binary.AppendUvarint(p.b, v)
}

// PackLen writes a sequence length prefix.
func (p *Packer) PackLen(n int) {
	if n < 0 {
		p.AddErr(fmt.Errorf("%w: negative length %d", ErrInvalidSize, n))
		return
	}
	p.PackULEB128(uint64(n))
}

// PackVariant writes the tag of an enum variant. Tags are the zero-based
// declaration order of the variant.
func (p *Packer) PackVariant(tag uint8) {
	p.PackULEB128(uint64(tag))
}

// PackFixedBytes writes [b] verbatim, without a length prefix.
func (p *Packer) PackFixedBytes(b []byte) {
	if !p.reserve(len(b)) {
		return
	}
	p.b = append(p.b, b...)
}

// PackBytes writes a length-prefixed byte sequence.
func (p *Packer) PackBytes(b []byte) {
	p.PackLen(len(b))
	p.PackFixedBytes(b)
}

// PackString writes a length-prefixed UTF-8 string.
func (p *Packer) PackString(s string) {
	p.PackLen(len(s))
	if !p.reserve(len(s)) {
		return
	}
	p.b = append(p.b, s...)
}

func (p *Packer) PackAddress(a Address) {
	p.PackFixedBytes(a[:])
}

// IsNil reports whether [m] is nil or holds a nil pointer.
func IsNil(m Marshaler) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// Pack writes [m]. A nil value, typed or not, is recorded as
// ErrFieldNotPopulated.
func (p *Packer) Pack(m Marshaler) {
	if IsNil(m) {
		p.AddErr(fmt.Errorf("%w: %T", ErrFieldNotPopulated, m))
		return
	}
	if p.err != nil {
		return
	}
	m.Marshal(p)
}

// PackSlice writes a length-prefixed sequence of [items].
func PackSlice[T Marshaler](p *Packer, items []T) {
	p.PackLen(len(items))
	for _, item := range items {
		p.Pack(item)
	}
}

// ULEB128Len returns the number of bytes PackULEB128 uses for [v].
func ULEB128Len(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// BytesLen returns the encoded size of a length-prefixed byte sequence.
func BytesLen(msg []byte) int {
	return ULEB128Len(uint64(len(msg))) + len(msg)
}

// StringLen returns the encoded size of a length-prefixed string.
func StringLen(msg string) int {
	return ULEB128Len(uint64(len(msg))) + len(msg)
}

// Marshal encodes [m] into a fresh buffer bounded by
// [consts.MaxTransactionSize].
func Marshal(m Marshaler) ([]byte, error) {
	p := NewWriter(256, consts.MaxTransactionSize)
	p.Pack(m)
	if err := p.Err(); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

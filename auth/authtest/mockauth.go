// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package authtest

import (
	"context"
	"encoding/base64"

	"github.com/ava-labs/suimint/chain"
	"github.com/ava-labs/suimint/codec"
)

var (
	_ chain.Auth        = (*MockAuth)(nil)
	_ chain.AuthFactory = (*MockAuthFactory)(nil)
)

type MockAuth struct {
	TypeID      uint8
	ActorAddr   codec.Address
	Raw         []byte
	VerifyError error
}

func (m *MockAuth) GetTypeID() uint8 {
	return m.TypeID
}

func (m *MockAuth) Address() codec.Address {
	return m.ActorAddr
}

func (m *MockAuth) Verify(context.Context, []byte) error {
	return m.VerifyError
}

func (m *MockAuth) Bytes() []byte {
	return m.Raw
}

func (m *MockAuth) Base64() string {
	return base64.StdEncoding.EncodeToString(m.Raw)
}

// MockAuthFactory records the last message it was asked to sign.
type MockAuthFactory struct {
	Addr      codec.Address
	Auth      chain.Auth
	SignError error

	Signed []byte
}

func (m *MockAuthFactory) Sign(msg []byte) (chain.Auth, error) {
	m.Signed = msg
	if m.SignError != nil {
		return nil, m.SignError
	}
	if m.Auth != nil {
		return m.Auth, nil
	}
	return &MockAuth{ActorAddr: m.Addr}, nil
}

func (m *MockAuthFactory) Address() codec.Address {
	return m.Addr
}

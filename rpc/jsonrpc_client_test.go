// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/suimint/codec"
	"github.com/ava-labs/suimint/requester"
)

var (
	testCap = codec.Address{0: 0xca, 31: 0x01}
	testGas = codec.Address{0: 0x9a, 31: 0x02}
)

type rpcRequest struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// newFullnode serves [results] keyed by method name.
func newFullnode(t *testing.T, results map[string]string, seen *[]rpcRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if seen != nil {
			*seen = append(*seen, req)
		}
		result, ok := results[req.Method]
		if !ok {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"Method not found"}}`)
			return
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"result":%s}`, result)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestMultiGetObjects(t *testing.T) {
	require := require.New(t)

	result := fmt.Sprintf(`[
		{"data":{"objectId":%q,"version":"77","digest":"11111111111111111111111111111111","owner":{"Shared":{"initial_shared_version":42}}}},
		{"data":{"objectId":%q,"version":"7","digest":"11111111111111111111111111111111","owner":{"AddressOwner":%q}}}
	]`, testCap, testGas, testCap)

	var seen []rpcRequest
	server := newFullnode(t, map[string]string{MultiGetObjectsMethod: result}, &seen)
	cli := NewJSONRPCClient(server.URL)

	objects, err := cli.MultiGetObjects(context.Background(), []codec.Address{testCap, testGas})
	require.NoError(err)
	require.Len(objects, 2)

	require.Equal(testCap, objects[0].ObjectID)
	require.Equal("77", objects[0].Version)
	version, shared := objects[0].Owner.IsShared()
	require.True(shared)
	require.Equal(uint64(42), version)

	require.Equal(testGas, objects[1].ObjectID)
	require.Equal(AddressOwnerKind, objects[1].Owner.Kind)
	require.Equal(testCap, objects[1].Owner.Address)
	_, shared = objects[1].Owner.IsShared()
	require.False(shared)

	require.Len(seen, 1)
	require.Len(seen[0].Params, 2)
	require.JSONEq(fmt.Sprintf(`[%q,%q]`, testCap, testGas), string(seen[0].Params[0]))
	require.JSONEq(`{"showOwner":true}`, string(seen[0].Params[1]))
}

func TestMultiGetObjectsErrors(t *testing.T) {
	tests := []struct {
		name   string
		result string
		ids    []codec.Address
		err    error
	}{
		{
			name:   "missing object",
			result: `[{"error":{"code":"notExists","object_id":"0x1"}}]`,
			ids:    []codec.Address{testCap},
			err:    ErrObjectNotFound,
		},
		{
			name:   "short response",
			result: `[]`,
			ids:    []codec.Address{testCap},
			err:    ErrUnexpectedResponse,
		},
		{
			name: "too many objects",
			ids:  make([]codec.Address, MaxObjectsPerRequest+1),
			err:  ErrTooManyObjects,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newFullnode(t, map[string]string{MultiGetObjectsMethod: tt.result}, nil)
			_, err := NewJSONRPCClient(server.URL).MultiGetObjects(context.Background(), tt.ids)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestGetReferenceGasPrice(t *testing.T) {
	require := require.New(t)

	server := newFullnode(t, map[string]string{GetReferenceGasPriceMethod: `"750"`}, nil)
	price, err := NewJSONRPCClientWithHTTP(server.Client(), server.URL).GetReferenceGasPrice(context.Background())
	require.NoError(err)
	require.Equal(uint64(750), price)

	server = newFullnode(t, map[string]string{GetReferenceGasPriceMethod: `"abc"`}, nil)
	_, err = NewJSONRPCClient(server.URL).GetReferenceGasPrice(context.Background())
	require.ErrorIs(err, ErrUnexpectedResponse)
}

func TestExecuteTransactionBlock(t *testing.T) {
	require := require.New(t)

	var seen []rpcRequest
	response := `{"digest":"11111111111111111111111111111111"}`
	server := newFullnode(t, map[string]string{ExecuteTransactionBlockMethod: response}, &seen)

	resp, err := NewJSONRPCClient(server.URL).ExecuteTransactionBlock(context.Background(), "AAE=", []string{"AA=="})
	require.NoError(err)
	require.JSONEq(response, string(resp))

	require.Len(seen, 1)
	require.Len(seen[0].Params, 2)
	require.JSONEq(`"AAE="`, string(seen[0].Params[0]))
	require.JSONEq(`["AA=="]`, string(seen[0].Params[1]))
}

func TestUnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := NewJSONRPCClient(server.URL).GetReferenceGasPrice(context.Background())
	require.ErrorIs(t, err, requester.ErrUnexpectedStatus)
}

func TestOwnerJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Owner
	}{
		{
			name:     "shared",
			input:    `{"Shared":{"initial_shared_version":1}}`,
			expected: Owner{Kind: SharedOwnerKind, InitialSharedVersion: 1},
		},
		{
			name:     "address",
			input:    fmt.Sprintf(`{"AddressOwner":%q}`, testGas),
			expected: Owner{Kind: AddressOwnerKind, Address: testGas},
		},
		{
			name:     "object",
			input:    fmt.Sprintf(`{"ObjectOwner":%q}`, testCap),
			expected: Owner{Kind: ObjectOwnerKind, Address: testCap},
		},
		{
			name:     "immutable",
			input:    `"Immutable"`,
			expected: Owner{Kind: ImmutableOwnerKind},
		},
		{
			name:     "unknown object",
			input:    `{"ConsensusAddressOwner":{"start_version":3,"owner":"0x1"}}`,
			expected: Owner{Kind: UnknownOwnerKind, Raw: json.RawMessage(`{"ConsensusAddressOwner":{"start_version":3,"owner":"0x1"}}`)},
		},
		{
			name:     "unknown string",
			input:    `"Mutable"`,
			expected: Owner{Kind: UnknownOwnerKind, Raw: json.RawMessage(`"Mutable"`)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			var owner Owner
			require.NoError(json.Unmarshal([]byte(tt.input), &owner))
			require.Equal(tt.expected, owner)

			b, err := json.Marshal(owner)
			require.NoError(err)
			require.JSONEq(tt.input, string(b))
		})
	}

	_, err := json.Marshal(Owner{Kind: UnknownOwnerKind})
	require.ErrorIs(t, err, ErrUnknownOwner)

	var owner Owner
	require.Error(t, json.Unmarshal([]byte(`{"AddressOwner":"0xzz"}`), &owner))
}

func TestMultiGetObjectsUnknownOwner(t *testing.T) {
	require := require.New(t)

	result := fmt.Sprintf(
		`[{"data":{"objectId":%q,"version":"1","digest":"1","owner":{"ConsensusAddressOwner":{"start_version":1,"owner":%q}}}},`+
			`{"data":{"objectId":%q,"version":"2","digest":"1","owner":{"AddressOwner":%q}}}]`,
		testCap, testGas, testGas, testCap,
	)
	server := newFullnode(t, map[string]string{MultiGetObjectsMethod: result}, nil)
	objects, err := NewJSONRPCClient(server.URL).MultiGetObjects(context.Background(), []codec.Address{testCap, testGas})
	require.NoError(err)
	require.Len(objects, 2)
	require.Equal(UnknownOwnerKind, objects[0].Owner.Kind)
	_, shared := objects[0].Owner.IsShared()
	require.False(shared)
	require.Equal(AddressOwnerKind, objects[1].Owner.Kind)
}

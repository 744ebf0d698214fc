// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/rpc/v2/json2"
	"github.com/stretchr/testify/require"
)

type request struct {
	Version string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      json.RawMessage `json:"id"`
}

func newServer(t *testing.T, handle func(w http.ResponseWriter, req *request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, contentType, r.Header.Get("Content-Type"))

		var req request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "2.0", req.Version)
		handle(w, &req)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSendRequest(t *testing.T) {
	require := require.New(t)

	server := newServer(t, func(w http.ResponseWriter, req *request) {
		require.Equal("suix_getReferenceGasPrice", req.Method)
		require.JSONEq(`["a",{"b":true}]`, string(req.Params))
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":"750"}`))
	})

	var reply string
	r := New(server.URL, "")
	require.NoError(r.SendRequest(
		context.Background(),
		"suix_getReferenceGasPrice",
		[]interface{}{"a", map[string]bool{"b": true}},
		&reply,
	))
	require.Equal("750", reply)
}

func TestSendRequestBase(t *testing.T) {
	require := require.New(t)

	server := newServer(t, func(w http.ResponseWriter, req *request) {
		require.Equal("sui.ping", req.Method)
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":true}`))
	})

	var reply bool
	r := NewWithClient(server.Client(), server.URL, "sui")
	require.NoError(r.SendRequest(context.Background(), "ping", nil, &reply))
	require.True(reply)
}

func TestSendRequestErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(*require.Assertions, error)
	}{
		{
			name:   "unexpected status",
			status: http.StatusServiceUnavailable,
			check: func(require *require.Assertions, err error) {
				require.ErrorIs(err, ErrUnexpectedStatus)
			},
		},
		{
			name:   "rpc error",
			status: http.StatusOK,
			body:   `{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"Invalid params"}}`,
			check: func(require *require.Assertions, err error) {
				var rpcErr *json2.Error
				require.ErrorAs(err, &rpcErr)
				require.Equal("Invalid params", rpcErr.Message)
			},
		},
		{
			name:   "null result",
			status: http.StatusOK,
			body:   `{"jsonrpc":"2.0","id":1,"result":null}`,
			check: func(require *require.Assertions, err error) {
				require.ErrorIs(err, json2.ErrNullResult)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newServer(t, func(w http.ResponseWriter, _ *request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			var reply string
			err := New(server.URL, "").SendRequest(context.Background(), "m", nil, &reply)
			tt.check(require.New(t), err)
		})
	}
}

func TestSendRequestCanceled(t *testing.T) {
	server := newServer(t, func(http.ResponseWriter, *request) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var reply string
	err := New(server.URL, "").SendRequest(ctx, "m", nil, &reply)
	require.ErrorIs(t, err, context.Canceled)
}

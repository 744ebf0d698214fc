// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ava-labs/suimint/codec"
	"github.com/ava-labs/suimint/requester"
)

// JSONRPCClient talks to a Sui fullnode.
type JSONRPCClient struct {
	requester *requester.EndpointRequester
}

func NewJSONRPCClient(uri string) *JSONRPCClient {
	return &JSONRPCClient{requester: requester.New(uri, "")}
}

func NewJSONRPCClientWithHTTP(cli *http.Client, uri string) *JSONRPCClient {
	return &JSONRPCClient{requester: requester.NewWithClient(cli, uri, "")}
}

// MultiGetObjects fetches the current version, digest and owner of every
// object in [ids], in the same order. Any missing object fails the whole
// call.
func (cli *JSONRPCClient) MultiGetObjects(ctx context.Context, ids []codec.Address) ([]*ObjectData, error) {
	if len(ids) > MaxObjectsPerRequest {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyObjects, len(ids), MaxObjectsPerRequest)
	}
	resp := []*ObjectResponse{}
	err := cli.requester.SendRequest(
		ctx,
		MultiGetObjectsMethod,
		[]interface{}{ids, GetObjectsOptions{ShowOwner: true}},
		&resp,
	)
	if err != nil {
		return nil, err
	}
	if len(resp) != len(ids) {
		return nil, fmt.Errorf("%w: requested %d objects, received %d", ErrUnexpectedResponse, len(ids), len(resp))
	}

	objects := make([]*ObjectData, len(ids))
	for i, obj := range resp {
		if obj == nil || obj.Data == nil {
			var detail string
			if obj != nil && len(obj.Error) > 0 {
				detail = string(obj.Error)
			}
			return nil, fmt.Errorf("%w: %s %s", ErrObjectNotFound, ids[i], detail)
		}
		objects[i] = obj.Data
	}
	return objects, nil
}

// GetReferenceGasPrice returns the gas price, in MIST per unit, for the
// current epoch.
func (cli *JSONRPCClient) GetReferenceGasPrice(ctx context.Context) (uint64, error) {
	var resp string
	err := cli.requester.SendRequest(
		ctx,
		GetReferenceGasPriceMethod,
		[]interface{}{},
		&resp,
	)
	if err != nil {
		return 0, err
	}
	price, err := strconv.ParseUint(resp, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: gas price %q: %w", ErrUnexpectedResponse, resp, err)
	}
	return price, nil
}

// ExecuteTransactionBlock submits a signed transaction. The response is
// returned as received.
func (cli *JSONRPCClient) ExecuteTransactionBlock(
	ctx context.Context,
	txBytes string,
	signatures []string,
) (json.RawMessage, error) {
	var resp json.RawMessage
	err := cli.requester.SendRequest(
		ctx,
		ExecuteTransactionBlockMethod,
		[]interface{}{txBytes, signatures},
		&resp,
	)
	return resp, err
}

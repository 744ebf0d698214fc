// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogFactoryWritesFile(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	logs, err := newLogFactory("debug", dir)
	require.NoError(err)

	log, err := logs.Make("suimint")
	require.NoError(err)
	log.Info("signed transaction", zap.String("digest", "abc"))

	_, err = logs.Make("suimint")
	require.Error(err)
	logs.Close()

	b, err := os.ReadFile(filepath.Join(dir, "suimint.log"))
	require.NoError(err)
	require.Contains(string(b), "signed transaction")
	require.Contains(string(b), `"digest":"abc"`)
}

func TestLogFactoryConsoleOnly(t *testing.T) {
	require := require.New(t)

	logs, err := newLogFactory("info", "")
	require.NoError(err)
	log, err := logs.Make("suimint")
	require.NoError(err)
	log.Debug("hidden")
	logs.Close()

	_, err = newLogFactory("loud", "")
	require.Error(err)
}

func TestResponseText(t *testing.T) {
	require := require.New(t)

	require.Equal(
		"digest: d\ngas price: 750 MIST\ngas budget: 0.010000000 SUI\ntxBytes: AA==\nsignature: BB==",
		dryRunCmdResponse{
			TxBytes:   "AA==",
			Signature: "BB==",
			Digest:    "d",
			GasPrice:  750,
			GasBudget: 10_000_000,
		}.String(),
	)
	require.Equal(`{"digest":"d"}`, mintCmdResponse{Response: []byte(`{"digest":"d"}`)}.String())
	require.Equal("0x01", keyAddressCmdResponse{Address: "0x01"}.String())
}

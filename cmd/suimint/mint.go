// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/suimint/auth"
	"github.com/ava-labs/suimint/config"
	"github.com/ava-labs/suimint/launchpad"
	"github.com/ava-labs/suimint/rpc"
	"github.com/ava-labs/suimint/utils"
)

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint from a launchpad",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		req, err := cfg.Request()
		if err != nil {
			return err
		}
		key, err := cfg.PrivateKey()
		if err != nil {
			return fmt.Errorf("failed to decode key: %w", err)
		}
		dryRun, err := cmd.Flags().GetBool("dry-run")
		if err != nil {
			return err
		}
		confirm, err := cmd.Flags().GetBool("confirm")
		if err != nil {
			return err
		}

		logs, err := newLogFactory(cfg.LogLevel, cfg.LogDir)
		if err != nil {
			return err
		}
		defer logs.Close()
		log, err := logs.Make("suimint")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()

		factory := auth.NewED25519Factory(key)
		minter := launchpad.NewMinter(log, rpc.NewJSONRPCClient(cfg.RPCURL), factory)
		log.Info("minting",
			zap.Stringer("sender", minter.Address()),
			zap.Stringer("package", req.Package),
			zap.Stringer("cap", req.Cap),
			zap.Stringer("gas", req.Gas),
			zap.String("rpc", cfg.RPCURL),
			zap.Bool("dryRun", dryRun),
		)

		if !dryRun && !confirm {
			resp, err := minter.Mint(ctx, req)
			if err != nil {
				return err
			}
			return printValue(cmd, mintCmdResponse{Response: resp})
		}

		prepared, err := minter.Prepare(ctx, req)
		if err != nil {
			return err
		}
		summary := dryRunCmdResponse{
			TxBytes:   prepared.Signed.TxBytes(),
			Signature: prepared.Signed.Signatures()[0],
			Digest:    prepared.Digest.String(),
			GasPrice:  prepared.Tx.V1.GasData.Price,
			GasBudget: prepared.Tx.V1.GasData.Budget,
		}
		if dryRun {
			isJSON, err := isJSONOutputRequested(cmd)
			if err != nil {
				return err
			}
			if !isJSON {
				summary.print()
				return nil
			}
			return printValue(cmd, summary)
		}

		summary.print()
		submit, err := confirmSubmit()
		if err != nil {
			return err
		}
		if !submit {
			return nil
		}
		resp, err := minter.Submit(ctx, prepared)
		if err != nil {
			return err
		}
		return printValue(cmd, mintCmdResponse{Response: resp})
	},
}

type dryRunCmdResponse struct {
	TxBytes   string `json:"txBytes"`
	Signature string `json:"signature"`
	Digest    string `json:"digest"`
	GasPrice  uint64 `json:"gasPrice"`
	GasBudget uint64 `json:"gasBudget"`
}

func (r dryRunCmdResponse) String() string {
	return fmt.Sprintf(
		"digest: %s\ngas price: %d MIST\ngas budget: %s SUI\ntxBytes: %s\nsignature: %s",
		r.Digest, r.GasPrice, utils.FormatBalance(r.GasBudget), r.TxBytes, r.Signature,
	)
}

func (r dryRunCmdResponse) print() {
	utils.Outf("{{yellow}}digest:{{/}} %s\n", r.Digest)
	utils.Outf("{{yellow}}gas price:{{/}} %d MIST\n", r.GasPrice)
	utils.Outf("{{yellow}}gas budget:{{/}} %s SUI\n", utils.FormatBalance(r.GasBudget))
	utils.Outf("{{yellow}}txBytes:{{/}} %s\n", r.TxBytes)
	utils.Outf("{{yellow}}signature:{{/}} %s\n", r.Signature)
}

type mintCmdResponse struct {
	Response json.RawMessage `json:"response"`
}

func (r mintCmdResponse) String() string {
	return string(r.Response)
}

func init() {
	flags := mintCmd.Flags()
	flags.String("count", "", "Number of items to mint")
	flags.String("sale-type", "", "Launchpad sale type")
	flags.String("cap-address", "", "Launchpad cap object id")
	flags.String("gas-address", "", "Gas coin object id, owned by the sender")
	flags.String("price", "", "Price per mint in MIST")
	flags.String("gas-budget", "", "Gas budget in MIST")
	flags.String("mint-address", "", "Launchpad package id")
	flags.Bool("dry-run", false, "Sign the transaction and print it without submitting")
	flags.Bool("confirm", false, "Ask for confirmation before submitting")

	bindFlags(flags, map[string]string{
		config.CountKey:       "count",
		config.SaleTypeKey:    "sale-type",
		config.CapAddressKey:  "cap-address",
		config.GasAddressKey:  "gas-address",
		config.PriceKey:       "price",
		config.GasBudgetKey:   "gas-budget",
		config.MintAddressKey: "mint-address",
	})

	rootCmd.AddCommand(mintCmd)
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/suimint/config"
	"github.com/ava-labs/suimint/rpc"
)

var rootCmd = &cobra.Command{
	Use:   "suimint",
	Short: "Mint from a BlueMove launchpad on Sui",
	Long: `Builds, signs and submits a bluemove_launchpad::mint_with_quantity transaction.

Every setting can be passed as a flag, as an environment variable named like
its key (secret_key, count, ...) or upper cased (SECRET_KEY, COUNT, ...), or
in a YAML file given with --config.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("output", "o", "text", "Output format (text or json)")
	flags.String("config", "", "Path to a YAML config file")
	flags.String("secret-key", "", "Hex encoded ed25519 seed")
	flags.String("rpc-url", rpc.MainnetURL, "Fullnode JSON-RPC endpoint, or one of mainnet, testnet, devnet")
	flags.String("log-level", config.DefaultLogLevel, "Log level")
	flags.String("log-dir", "", "Directory for rotated JSON logs (disabled when empty)")
	flags.Duration("timeout", config.DefaultTimeout, "Overall deadline for all fullnode requests")

	bindFlags(flags, map[string]string{
		config.SecretKeyKey: "secret-key",
		config.RPCURLKey:    "rpc-url",
		config.LogLevelKey:  "log-level",
		config.LogDirKey:    "log-dir",
		config.TimeoutKey:   "timeout",
	})
}

func main() {
	Execute()
}

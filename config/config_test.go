// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/suimint/codec"
	"github.com/ava-labs/suimint/launchpad"
	"github.com/ava-labs/suimint/rpc"
)

const (
	testSeed = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	testCap  = "ca00000000000000000000000000000000000000000000000000000000000001"
	testGas  = "0x9a00000000000000000000000000000000000000000000000000000000000002"
	testPkg  = "aa00000000000000000000000000000000000000000000000000000000000003"
)

func setEnv(t *testing.T, upper bool) {
	t.Helper()
	values := map[string]string{
		SecretKeyKey:   testSeed,
		CountKey:       "1",
		SaleTypeKey:    "1",
		CapAddressKey:  testCap,
		GasAddressKey:  testGas,
		PriceKey:       "1000000000",
		GasBudgetKey:   "10000000",
		MintAddressKey: testPkg,
	}
	for key, value := range values {
		if upper {
			key = strings.ToUpper(key)
		}
		t.Setenv(key, value)
	}
}

func TestLoadFromEnv(t *testing.T) {
	for _, upper := range []bool{false, true} {
		t.Run(map[bool]string{false: "lower", true: "upper"}[upper], func(t *testing.T) {
			require := require.New(t)
			setEnv(t, upper)

			c, err := Load(viper.New())
			require.NoError(err)
			require.NoError(c.Verify())
			require.Equal(rpc.MainnetURL, c.RPCURL)
			require.Equal(DefaultLogLevel, c.LogLevel)
			require.Equal(DefaultTimeout, c.Timeout)

			req, err := c.Request()
			require.NoError(err)
			require.Equal(&launchpad.Request{
				Price:     "1000000000",
				SaleType:  "1",
				Count:     "1",
				Cap:       codec.MustParseAddress(testCap),
				Gas:       codec.MustParseAddress(testGas),
				Package:   codec.MustParseAddress(testPkg),
				GasBudget: 10_000_000,
			}, req)

			priv, err := c.PrivateKey()
			require.NoError(err)
			require.Equal(testSeed, codec.ToHex(priv.Seed()))
		})
	}
}

func TestLoadPrecedence(t *testing.T) {
	require := require.New(t)
	t.Setenv(CountKey, "2")
	t.Setenv(strings.ToUpper(CountKey), "3")
	t.Setenv(strings.ToUpper(PriceKey), "4")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(os.WriteFile(path, []byte("count: 9\nprice: 9\nsale_type: 9\ntimeout: 5s\n"), 0o600))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(SaleTypeKey, "", "")
	require.NoError(flags.Parse([]string{"--sale_type=7"}))

	v := viper.New()
	require.NoError(v.BindPFlags(flags))
	require.NoError(ReadFile(v, path))
	c, err := Load(v)
	require.NoError(err)

	require.Equal("2", c.Count)
	require.Equal("4", c.Price)
	require.Equal("7", c.SaleType)
	require.Equal(5*time.Second, c.Timeout)
}

func TestLoadNetworkName(t *testing.T) {
	for name, url := range map[string]string{
		"testnet":                rpc.TestnetURL,
		"DEVNET":                 rpc.DevnetURL,
		"http://127.0.0.1:9000/": "http://127.0.0.1:9000/",
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(RPCURLKey, name)
			c, err := Load(viper.New())
			require.NoError(t, err)
			require.Equal(t, url, c.RPCURL)
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	err := ReadFile(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestVerifyReportsFirstMissingKey(t *testing.T) {
	require := require.New(t)

	c := &Config{Timeout: time.Second}
	err := c.Verify()
	require.ErrorIs(err, ErrMissingValue)
	require.ErrorContains(err, SecretKeyKey)

	c.SecretKey = testSeed
	c.Count = "1"
	err = c.Verify()
	require.ErrorIs(err, ErrMissingValue)
	require.ErrorContains(err, SaleTypeKey)

	_, err = (&Config{}).PrivateKey()
	require.ErrorIs(err, ErrMissingValue)
}

func TestRequestInvalidValues(t *testing.T) {
	valid := func() *Config {
		return &Config{
			SecretKey:   testSeed,
			Count:       "1",
			SaleType:    "1",
			CapAddress:  testCap,
			GasAddress:  testGas,
			Price:       "1",
			GasBudget:   "1",
			MintAddress: testPkg,
			RPCURL:      rpc.MainnetURL,
			Timeout:     time.Second,
		}
	}
	tests := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{
			name:   "short cap address",
			modify: func(c *Config) { c.CapAddress = "0x6" },
			err:    ErrInvalidValue,
		},
		{
			name:   "non hex package",
			modify: func(c *Config) { c.MintAddress = strings.Repeat("zz", codec.AddressLen) },
			err:    ErrInvalidValue,
		},
		{
			name:   "gas budget",
			modify: func(c *Config) { c.GasBudget = "lots" },
			err:    launchpad.ErrInvalidNumber,
		},
		{
			name:   "timeout",
			modify: func(c *Config) { c.Timeout = 0 },
			err:    ErrInvalidValue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(c)
			_, err := c.Request()
			require.ErrorIs(t, err, tt.err)
		})
	}
}

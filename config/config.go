// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ava-labs/suimint/codec"
	"github.com/ava-labs/suimint/crypto/ed25519"
	"github.com/ava-labs/suimint/launchpad"
	"github.com/ava-labs/suimint/rpc"
)

const (
	SecretKeyKey   = "secret_key"
	CountKey       = "count"
	SaleTypeKey    = "sale_type"
	CapAddressKey  = "cap_address"
	GasAddressKey  = "gas_address"
	PriceKey       = "price"
	GasBudgetKey   = "gas_budget"
	MintAddressKey = "mint_address"
	RPCURLKey      = "rpc_url"
	LogLevelKey    = "log_level"
	LogDirKey      = "log_dir"
	TimeoutKey     = "timeout"

	DefaultLogLevel = "info"
	DefaultTimeout  = 30 * time.Second
)

// Keys is every setting, in the order it is reported when missing.
var Keys = []string{
	SecretKeyKey,
	CountKey,
	SaleTypeKey,
	CapAddressKey,
	GasAddressKey,
	PriceKey,
	GasBudgetKey,
	MintAddressKey,
	RPCURLKey,
	LogLevelKey,
	LogDirKey,
	TimeoutKey,
}

type Config struct {
	SecretKey   string        `mapstructure:"secret_key"`
	Count       string        `mapstructure:"count"`
	SaleType    string        `mapstructure:"sale_type"`
	CapAddress  string        `mapstructure:"cap_address"`
	GasAddress  string        `mapstructure:"gas_address"`
	Price       string        `mapstructure:"price"`
	GasBudget   string        `mapstructure:"gas_budget"`
	MintAddress string        `mapstructure:"mint_address"`
	RPCURL      string        `mapstructure:"rpc_url"`
	LogLevel    string        `mapstructure:"log_level"`
	LogDir      string        `mapstructure:"log_dir"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// SetDefaults registers the default of every optional setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(RPCURLKey, rpc.MainnetURL)
	v.SetDefault(LogLevelKey, DefaultLogLevel)
	v.SetDefault(TimeoutKey, DefaultTimeout)
}

// Load reads every setting from [v]. Each setting may also be provided by
// an environment variable named exactly like its key or like its upper
// cased key, in that order of preference.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	for _, key := range Keys {
		if err := v.BindEnv(key, key, strings.ToUpper(key)); err != nil {
			return nil, err
		}
	}
	return &Config{
		SecretKey:   v.GetString(SecretKeyKey),
		Count:       v.GetString(CountKey),
		SaleType:    v.GetString(SaleTypeKey),
		CapAddress:  v.GetString(CapAddressKey),
		GasAddress:  v.GetString(GasAddressKey),
		Price:       v.GetString(PriceKey),
		GasBudget:   v.GetString(GasBudgetKey),
		MintAddress: v.GetString(MintAddressKey),
		RPCURL:      rpc.ResolveURL(v.GetString(RPCURLKey)),
		LogLevel:    v.GetString(LogLevelKey),
		LogDir:      v.GetString(LogDirKey),
		Timeout:     v.GetDuration(TimeoutKey),
	}, nil
}

// ReadFile merges the settings in the config file at [path] into [v].
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// VerifyKey checks that the secret key is present.
func (c *Config) VerifyKey() error {
	if c.SecretKey == "" {
		return fmt.Errorf("%w: %s", ErrMissingValue, SecretKeyKey)
	}
	return nil
}

// Verify checks that every setting a mint needs is present.
func (c *Config) Verify() error {
	required := []struct {
		key   string
		value string
	}{
		{SecretKeyKey, c.SecretKey},
		{CountKey, c.Count},
		{SaleTypeKey, c.SaleType},
		{CapAddressKey, c.CapAddress},
		{GasAddressKey, c.GasAddress},
		{PriceKey, c.Price},
		{GasBudgetKey, c.GasBudget},
		{MintAddressKey, c.MintAddress},
		{RPCURLKey, c.RPCURL},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingValue, r.key)
		}
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidValue, TimeoutKey)
	}
	return nil
}

// PrivateKey decodes the hex encoded secret key seed.
func (c *Config) PrivateKey() (ed25519.PrivateKey, error) {
	if err := c.VerifyKey(); err != nil {
		return ed25519.EmptyPrivateKey, err
	}
	return ed25519.HexToKey(c.SecretKey)
}

// Request converts the mint settings into a launchpad request. Price,
// sale type and count are passed through verbatim.
func (c *Config) Request() (*launchpad.Request, error) {
	if err := c.Verify(); err != nil {
		return nil, err
	}
	capAddr, err := parseAddress(CapAddressKey, c.CapAddress)
	if err != nil {
		return nil, err
	}
	gas, err := parseAddress(GasAddressKey, c.GasAddress)
	if err != nil {
		return nil, err
	}
	pkg, err := parseAddress(MintAddressKey, c.MintAddress)
	if err != nil {
		return nil, err
	}
	budget, err := strconv.ParseUint(c.GasBudget, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q: %w", launchpad.ErrInvalidNumber, GasBudgetKey, c.GasBudget, err)
	}
	return &launchpad.Request{
		Price:     c.Price,
		SaleType:  c.SaleType,
		Count:     c.Count,
		Cap:       capAddr,
		Gas:       gas,
		Package:   pkg,
		GasBudget: budget,
	}, nil
}

func parseAddress(key, s string) (codec.Address, error) {
	addr, err := codec.ParseAddress(s)
	if err != nil {
		return codec.EmptyAddress, fmt.Errorf("%w: %s: %w", ErrInvalidValue, key, err)
	}
	return addr, nil
}

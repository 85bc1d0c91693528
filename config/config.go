// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/btcsuite/btcd/chaincfg"
	"gopkg.in/yaml.v2"

	"github.com/BoostyLabs/ordtransfer/bitcoin"
)

// DefaultPath defines settings file used when no path is given.
const DefaultPath = "settings.yaml"

// Supported wallet kinds.
const (
	WalletSingleSigTaproot = "single-sig-taproot"
	WalletMultiSigSegwit   = "multi-sig-segwit"
)

// Supported inscription resolver kinds.
const (
	ResolverStatic = "static"
	ResolverOrd    = "ord"
)

// Supported chain source kinds.
const (
	ChainSourceEsplora  = "esplora"
	ChainSourceBitcoind = "bitcoind"
)

// Config describes settings file.
type Config struct {
	Network     string      `yaml:"network"`
	Wallet      Wallet      `yaml:"wallet"`
	Resolver    Resolver    `yaml:"resolver"`
	ChainSource ChainSource `yaml:"chain_source"`
	FeeOffset   int64       `yaml:"fee_offset"` // satoshi added on top of vsize * fee rate.
	Log         Log         `yaml:"log"`
}

// Wallet describes wallet signing scheme.
type Wallet struct {
	Kind      string `yaml:"kind"`
	Threshold uint8  `yaml:"threshold,omitempty"`
	Max       uint8  `yaml:"max,omitempty"`
}

// Resolver describes inscription id resolver.
type Resolver struct {
	Kind string `yaml:"kind"`
	Path string `yaml:"path,omitempty"` // static lookup table file.
	URL  string `yaml:"url,omitempty"`  // ord server base url.
}

// ChainSource describes previous transactions source used for PSBT enrichment.
type ChainSource struct {
	Kind      string `yaml:"kind"`
	URL       string `yaml:"url,omitempty"` // esplora base url, network default if empty.
	Host      string `yaml:"host,omitempty"`
	User      string `yaml:"user,omitempty"`
	Password  string `yaml:"password,omitempty"`
	CacheSize int    `yaml:"cache_size,omitempty"`
}

// Log describes logging settings.
type Log struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path,omitempty"`
}

// Default returns default settings.
func Default() *Config {
	return &Config{
		Network:     "regtest",
		Wallet:      Wallet{Kind: WalletSingleSigTaproot},
		Resolver:    Resolver{Kind: ResolverStatic, Path: "inscriptions.json"},
		ChainSource: ChainSource{Kind: ChainSourceEsplora, CacheSize: 64},
		FeeOffset:   int64(bitcoin.DustAmount),
		Log:         Log{Level: "info"},
	}
}

// Load reads settings file, absent keys keep default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, bitcoin.ConfigurationError(nil, path, err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings file.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks settings values.
func (cfg *Config) Validate() error {
	if _, err := cfg.NetworkParams(); err != nil {
		return err
	}

	switch cfg.Wallet.Kind {
	case WalletSingleSigTaproot, WalletMultiSigSegwit:
	default:
		return bitcoin.ConfigurationError(bitcoin.ErrUnsupportedWalletType, "wallet.kind", fmt.Errorf("%q", cfg.Wallet.Kind))
	}

	switch cfg.Resolver.Kind {
	case ResolverStatic:
		if cfg.Resolver.Path == "" {
			return bitcoin.ConfigurationError(nil, "resolver.path", errors.New("empty static resolver file path"))
		}
	case ResolverOrd:
		if cfg.Resolver.URL == "" {
			return bitcoin.ConfigurationError(nil, "resolver.url", errors.New("empty ord server url"))
		}
	default:
		return bitcoin.ConfigurationError(bitcoin.ErrUnsupportedResolver, "resolver.kind", fmt.Errorf("%q", cfg.Resolver.Kind))
	}

	switch cfg.ChainSource.Kind {
	case ChainSourceEsplora:
	case ChainSourceBitcoind:
		if cfg.ChainSource.Host == "" {
			return bitcoin.ConfigurationError(nil, "chain_source.host", errors.New("empty bitcoind host"))
		}
	default:
		return bitcoin.ConfigurationError(nil, "chain_source.kind", fmt.Errorf("unsupported chain source %q", cfg.ChainSource.Kind))
	}

	if cfg.FeeOffset < 0 {
		return bitcoin.ConfigurationError(nil, "fee_offset", errors.New("must not be negative"))
	}

	return nil
}

// NetworkParams returns chain parameters of the configured network.
func (cfg *Config) NetworkParams() (*chaincfg.Params, error) {
	switch cfg.Network {
	case "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, bitcoin.ConfigurationError(nil, "network", fmt.Errorf("unsupported network %q", cfg.Network))
	}
}

// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"errors"
	"os"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/BoostyLabs/ordtransfer/bitcoin/chainsource"
	"github.com/BoostyLabs/ordtransfer/bitcoin/resolver"
	"github.com/BoostyLabs/ordtransfer/bitcoin/txbuilder"
	"github.com/BoostyLabs/ordtransfer/config"
	"github.com/BoostyLabs/ordtransfer/internal/logger"
)

// app holds components wired from settings file.
type app struct {
	cfg       *config.Config
	params    *chaincfg.Params
	builder   *txbuilder.TxBuilder
	resolver  resolver.Resolver
	templates *txbuilder.WitnessTemplates
	wallet    txbuilder.WalletType
}

// loadSettings reads settings file, writing and returning defaults if it does not exist.
func loadSettings(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg = config.Default()
	if err = config.Save(cfg, path); err != nil {
		return nil, err
	}

	logger.Module("cli").Infof("wrote default settings to %s", path)
	return cfg, nil
}

// newApp loads settings and wires components.
func newApp(path string) (*app, error) {
	cfg, err := loadSettings(path)
	if err != nil {
		return nil, err
	}

	if err = logger.Init(cfg.Log.Level, cfg.Log.Path); err != nil {
		return nil, err
	}

	params, err := cfg.NetworkParams()
	if err != nil {
		return nil, err
	}

	location := cfg.Resolver.Path
	if cfg.Resolver.Kind == config.ResolverOrd {
		location = cfg.Resolver.URL
	}

	r, err := resolver.New(cfg.Resolver.Kind, location)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		params:    params,
		builder:   txbuilder.NewTxBuilder(params, txbuilder.WithFeeOffset(btcutil.Amount(cfg.FeeOffset))),
		resolver:  r,
		templates: txbuilder.NewWitnessTemplates(),
		wallet: txbuilder.WalletType{
			Kind:      txbuilder.WalletKind(cfg.Wallet.Kind),
			Threshold: cfg.Wallet.Threshold,
			Max:       cfg.Wallet.Max,
		},
	}, nil
}

// chainSource returns configured previous transactions source and its release function.
func (a *app) chainSource() (chainsource.Source, func(), error) {
	var (
		source  chainsource.Source
		release = func() {}
	)

	switch a.cfg.ChainSource.Kind {
	case config.ChainSourceBitcoind:
		bitcoind, err := chainsource.NewBitcoind(a.cfg.ChainSource.Host, a.cfg.ChainSource.User, a.cfg.ChainSource.Password)
		if err != nil {
			return nil, nil, err
		}

		source, release = bitcoind, bitcoind.Close
	default:
		url := a.cfg.ChainSource.URL
		if url == "" {
			var err error
			if url, err = chainsource.DefaultEsploraURL(a.params); err != nil {
				return nil, nil, err
			}
		}

		source = chainsource.NewEsplora(url, nil)
	}

	if a.cfg.ChainSource.CacheSize <= 0 {
		return source, release, nil
	}

	cached, err := chainsource.NewCached(source, a.cfg.ChainSource.CacheSize)
	if err != nil {
		release()
		return nil, nil, err
	}

	return cached, release, nil
}

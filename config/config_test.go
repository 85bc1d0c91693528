// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/ordtransfer/bitcoin"
	"github.com/BoostyLabs/ordtransfer/config"
)

func TestConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("Default round trip", func(t *testing.T) {
		path := filepath.Join(dir, "default.yaml")
		require.NoError(t, config.Save(config.Default(), path))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, config.Default(), cfg)
		require.EqualValues(t, bitcoin.DustAmount, cfg.FeeOffset)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		data := "network: signet\n" +
			"wallet: {kind: multi-sig-segwit, threshold: 2, max: 3}\n" +
			"resolver: {kind: ord, url: 'http://localhost:8080'}\n" +
			"fee_offset: 1234\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, config.WalletMultiSigSegwit, cfg.Wallet.Kind)
		require.EqualValues(t, 2, cfg.Wallet.Threshold)
		require.EqualValues(t, 3, cfg.Wallet.Max)
		require.Equal(t, "http://localhost:8080", cfg.Resolver.URL)
		require.Equal(t, config.ChainSourceEsplora, cfg.ChainSource.Kind)
		require.EqualValues(t, 1234, cfg.FeeOffset)
		require.Equal(t, "info", cfg.Log.Level)

		params, err := cfg.NetworkParams()
		require.NoError(t, err)
		require.Equal(t, &chaincfg.SigNetParams, params)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(dir, "absent.yaml"))
		require.Error(t, err)
		require.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("invalid", func(t *testing.T) {
		tests := []struct {
			data string
			kind error
		}{
			{"network: litecoin\n", nil},
			{"wallet: {kind: hardware}\n", bitcoin.ErrUnsupportedWalletType},
			{"resolver: {kind: database}\n", bitcoin.ErrUnsupportedResolver},
			{"resolver: {kind: ord}\n", nil},
			{"resolver: {kind: static, path: ''}\n", nil},
			{"chain_source: {kind: bitcoind}\n", nil},
			{"chain_source: {kind: electrum}\n", nil},
			{"fee_offset: -1\n", nil},
			{"unknown_key: 1\n", nil},
			{"network: [\n", nil},
		}
		for i, test := range tests {
			path := filepath.Join(dir, "invalid.yaml")
			require.NoError(t, os.WriteFile(path, []byte(test.data), 0o644))

			_, err := config.Load(path)
			require.Error(t, err, i)
			require.ErrorIs(t, err, bitcoin.ErrConfiguration, i)
			if test.kind != nil {
				require.ErrorIs(t, err, test.kind, i)
			}
		}
	})

	t.Run("NetworkParams", func(t *testing.T) {
		tests := []struct {
			network string
			params  *chaincfg.Params
		}{
			{"mainnet", &chaincfg.MainNetParams},
			{"bitcoin", &chaincfg.MainNetParams},
			{"testnet", &chaincfg.TestNet3Params},
			{"testnet3", &chaincfg.TestNet3Params},
			{"signet", &chaincfg.SigNetParams},
			{"regtest", &chaincfg.RegressionNetParams},
		}
		for _, test := range tests {
			cfg := config.Default()
			cfg.Network = test.network

			params, err := cfg.NetworkParams()
			require.NoError(t, err)
			require.Equal(t, test.params, params)
		}
	})
}

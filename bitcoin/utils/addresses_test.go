// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package utils_test

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/ordtransfer/bitcoin/utils"
)

func TestAddresses(t *testing.T) {
	regtestTaproot, err := btcutil.NewAddressTaproot(bytes.Repeat([]byte{0x01}, 32), &chaincfg.RegressionNetParams)
	require.NoError(t, err)

	tests := []struct {
		address string
		params  *chaincfg.Params
		invalid bool
	}{
		{"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", &chaincfg.MainNetParams, false},
		{"tb1p9m40h0uj4uk37hsgvm97h4shhx2kyhehvfax8rysfhwjdp2ycvgqtxqsu0", &chaincfg.TestNet3Params, false},
		{"2MvdCXCZZsJc3g9gsXhWdAoTwzoTX2vq3yv", &chaincfg.TestNet3Params, false},
		{regtestTaproot.EncodeAddress(), &chaincfg.RegressionNetParams, false},
		{"tb1p9m40h0uj4uk37hsgvm97h4shhx2kyhehvfax8rysfhwjdp2ycvgqtxqsu0", &chaincfg.MainNetParams, true},
		{"2MvdCXCZZsJc3g9gsXhWdAoTwzoTX2vq3yv", &chaincfg.MainNetParams, true},
		{"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", &chaincfg.RegressionNetParams, true},
		{"not an address", &chaincfg.MainNetParams, true},
		{"", &chaincfg.MainNetParams, true},
	}

	t.Run("DecodeAddress", func(t *testing.T) {
		for _, test := range tests {
			_, err := utils.DecodeAddress(test.address, test.params)
			if test.invalid {
				require.Error(t, err, test.address)
			} else {
				require.NoError(t, err, test.address)
			}
		}
	})

	t.Run("AddressScript", func(t *testing.T) {
		script, err := utils.AddressScript(regtestTaproot.EncodeAddress(), &chaincfg.RegressionNetParams)
		require.NoError(t, err)
		require.Equal(t, txscript.WitnessV1TaprootTy, txscript.GetScriptClass(script))

		script, err = utils.AddressScript("2MvdCXCZZsJc3g9gsXhWdAoTwzoTX2vq3yv", &chaincfg.TestNet3Params)
		require.NoError(t, err)
		require.Equal(t, txscript.ScriptHashTy, txscript.GetScriptClass(script))

		_, err = utils.AddressScript("2MvdCXCZZsJc3g9gsXhWdAoTwzoTX2vq3yv", &chaincfg.MainNetParams)
		require.Error(t, err)
	})
}

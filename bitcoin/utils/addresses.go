// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package utils

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// DecodeAddress decodes address and requires it to belong to the provided network.
func DecodeAddress(address string, chainParams *chaincfg.Params) (btcutil.Address, error) {
	decoded, err := btcutil.DecodeAddress(address, chainParams)
	if err != nil {
		return nil, err
	}

	if !decoded.IsForNet(chainParams) {
		return nil, fmt.Errorf("address %s is not for %s network", address, chainParams.Name)
	}

	return decoded, nil
}

// AddressScript returns locking script (ScriptPubKey) paying to the address on the provided network.
func AddressScript(address string, chainParams *chaincfg.Params) ([]byte, error) {
	decoded, err := DecodeAddress(address, chainParams)
	if err != nil {
		return nil, err
	}

	return txscript.PayToAddrScript(decoded)
}

// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package utils

import (
	"errors"

	"github.com/btcsuite/btcd/txscript"
)

// NewMultiSigRedeemScript generates M of N bare multi-sig script for segwit v0 redeem (witness) script.
// INFO: Script will have the next format: {<threshold> <pubKey1> ... <pubKeyN> <N> OP_CHECKMULTISIG}.
// Public keys are pushed as is, so zero filled placeholders of compressed key size are accepted.
func NewMultiSigRedeemScript(threshold int, pubKeys ...[]byte) ([]byte, error) {
	if len(pubKeys) == 0 {
		return nil, errors.New("at least 1 public key is required")
	}
	if len(pubKeys) > txscript.MaxPubKeysPerMultiSig {
		return nil, errors.New("too many public keys for multi-sig script")
	}
	if threshold < 1 || threshold > len(pubKeys) {
		return nil, errors.New("threshold must be in range [1, public keys amount]")
	}

	scriptBuilder := txscript.NewScriptBuilder().AddInt64(int64(threshold))
	for _, pubKey := range pubKeys {
		scriptBuilder.AddData(pubKey)
	}

	return scriptBuilder.
		AddInt64(int64(len(pubKeys))).
		AddOp(txscript.OP_CHECKMULTISIG).
		Script()
}

// MustMultiSigRedeemScript uses NewMultiSigRedeemScript, panics in case of error.
func MustMultiSigRedeemScript(threshold int, pubKeys ...[]byte) []byte {
	script, err := NewMultiSigRedeemScript(threshold, pubKeys...)
	if err != nil {
		panic(err)
	}

	return script
}

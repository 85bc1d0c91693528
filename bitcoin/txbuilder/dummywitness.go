// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/wire"

	"github.com/BoostyLabs/ordtransfer/bitcoin"
	"github.com/BoostyLabs/ordtransfer/bitcoin/utils"
)

// WalletKind defines wallet signing scheme kind.
type WalletKind string

const (
	// SingleSigTaproot defines taproot key path wallet, one schnorr signature per input.
	SingleSigTaproot WalletKind = "single-sig-taproot"
	// MultiSigSegwit defines threshold wallet spending segwit v0 multi-sig script.
	MultiSigSegwit WalletKind = "multi-sig-segwit"
)

// WalletType describes wallet signing scheme. Threshold and Max are used by MultiSigSegwit only.
type WalletType struct {
	Kind      WalletKind
	Threshold uint8
	Max       uint8
}

// String returns wallet type description.
func (w WalletType) String() string {
	if w.Kind == MultiSigSegwit {
		return fmt.Sprintf("%s %d-of-%d", w.Kind, w.Threshold, w.Max)
	}

	return string(w.Kind)
}

// WitnessTemplates holds placeholder witnesses used for transaction size estimation.
// Built once and shared, returned witnesses are copies.
type WitnessTemplates struct {
	singleSigTaproot wire.TxWitness
	multiSig2Of3     wire.TxWitness
}

// NewWitnessTemplates builds placeholder witnesses for all modeled wallet types.
func NewWitnessTemplates() *WitnessTemplates {
	fakeSignature := make([]byte, schnorr.SignatureSize)
	fakePubKey := make([]byte, btcec.PubKeyBytesLenCompressed)

	return &WitnessTemplates{
		singleSigTaproot: wire.TxWitness{fakeSignature},
		multiSig2Of3: wire.TxWitness{
			fakeSignature,
			fakeSignature,
			utils.MustMultiSigRedeemScript(2, fakePubKey, fakePubKey, fakePubKey),
		},
	}
}

// Witness returns placeholder witness for wallet type.
// Fails for wallet types without modeled witness, guessing size would under-estimate the fee.
func (wt *WitnessTemplates) Witness(wallet WalletType) (wire.TxWitness, error) {
	switch {
	case wallet.Kind == SingleSigTaproot:
		return cloneWitness(wt.singleSigTaproot), nil
	case wallet.Kind == MultiSigSegwit && wallet.Threshold == 2 && wallet.Max == 3:
		return cloneWitness(wt.multiSig2Of3), nil
	default:
		return nil, bitcoin.ConfigurationError(bitcoin.ErrUnsupportedWalletType, wallet.String(), nil)
	}
}

// cloneWitness returns deep copy of witness.
func cloneWitness(witness wire.TxWitness) wire.TxWitness {
	cloned := make(wire.TxWitness, len(witness))
	for i, item := range witness {
		cloned[i] = append([]byte(nil), item...)
	}

	return cloned
}

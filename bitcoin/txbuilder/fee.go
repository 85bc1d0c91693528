// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/mempool"
	"github.com/btcsuite/btcd/wire"
	"github.com/sirupsen/logrus"

	"github.com/BoostyLabs/ordtransfer/bitcoin"
	"github.com/BoostyLabs/ordtransfer/bitcoin/resolver"
	"github.com/BoostyLabs/ordtransfer/manifest"
)

const (
	// DefaultFeeOffset defines default amount added on top of estimated fee.
	DefaultFeeOffset = bitcoin.DustAmount
	// LegacyFeeOffset defines fee offset used by early releases.
	LegacyFeeOffset btcutil.Amount = 1234
)

// EstimateFee returns fee in satoshi for the transfer transaction once all its inputs are signed
// by wallet. Unfunded manifests are estimated as if a funding input from the same wallet is added.
func (b *TxBuilder) EstimateFee(ctx context.Context, m *manifest.Manifest, r resolver.Resolver,
	templates *WitnessTemplates, wallet WalletType) (btcutil.Amount, error) {
	witness, err := templates.Witness(wallet)
	if err != nil {
		return 0, err
	}

	tx, err := b.BuildTransferTx(ctx, m, r)
	if err != nil {
		return 0, err
	}

	vSize := VirtualSize(tx, witness, !m.Funded())
	if err = b.checkFeeRate(m.FeeRate, vSize); err != nil {
		return 0, err
	}

	fee := btcutil.Amount(vSize)*btcutil.Amount(m.FeeRate) + b.feeOffset

	b.log.WithFields(logrus.Fields{
		"vsize":    vSize,
		"fee_rate": m.FeeRate,
		"wallet":   wallet.String(),
	}).Debugf("estimated fee %d", int64(fee))

	return fee, nil
}

// checkFeeRate ensures vSize * feeRate + fee offset stays within bitcoin supply.
func (b *TxBuilder) checkFeeRate(feeRate uint64, vSize int64) error {
	limit := btcutil.MaxSatoshi - b.feeOffset
	if limit < 0 {
		return bitcoin.ValidationError(bitcoin.ErrFeeRateTooHigh, "fee_rate",
			fmt.Errorf("fee offset %d exceeds bitcoin supply", int64(b.feeOffset)))
	}

	if feeRate > uint64(limit)/uint64(vSize) {
		return bitcoin.ValidationError(bitcoin.ErrFeeRateTooHigh, "fee_rate",
			fmt.Errorf("%d sat/vB for %d vB exceeds bitcoin supply", feeRate, vSize))
	}

	return nil
}

// VirtualSize returns virtual size of a copy of tx with witness placed on every input.
// When addFunding is set one more input is added before measuring.
func VirtualSize(tx *wire.MsgTx, witness wire.TxWitness, addFunding bool) int64 {
	sized := tx.Copy()
	if addFunding {
		sized.AddTxIn(wire.NewTxIn(&wire.OutPoint{}, nil, nil))
	}

	for _, in := range sized.TxIn {
		in.Witness = cloneWitness(witness)
	}

	return mempool.GetTxVirtualSize(btcutil.NewTx(sized))
}

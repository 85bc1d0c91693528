// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/wire"

	"github.com/BoostyLabs/ordtransfer/bitcoin"
	"github.com/BoostyLabs/ordtransfer/bitcoin/chainsource"
	"github.com/BoostyLabs/ordtransfer/bitcoin/resolver"
	"github.com/BoostyLabs/ordtransfer/manifest"
)

// BuildTransferPSBT wraps unsigned tx into PSBT and sets witness utxo of every input,
// fetching previous transactions from source in input order.
func BuildTransferPSBT(ctx context.Context, tx *wire.MsgTx, source chainsource.Source) (*psbt.Packet, error) {
	packet, err := psbt.NewFromUnsignedTx(tx)
	if err != nil {
		return nil, err
	}

	for i, in := range tx.TxIn {
		prevOut := in.PreviousOutPoint

		prevTx, err := source.Transaction(ctx, &prevOut.Hash)
		if err != nil {
			return nil, bitcoin.ChainLookupError(nil, prevOut.Hash.String(), err)
		}

		if int(prevOut.Index) >= len(prevTx.TxOut) {
			return nil, bitcoin.ChainLookupError(bitcoin.ErrPreviousOutputNotFound, prevOut.String(),
				fmt.Errorf("transaction has %d outputs", len(prevTx.TxOut)))
		}

		utxo := prevTx.TxOut[prevOut.Index]
		packet.Inputs[i].WitnessUtxo = wire.NewTxOut(utxo.Value, utxo.PkScript)
	}

	return packet, nil
}

// CreatePSBT builds transfer transaction for the manifest and wraps it into enriched PSBT.
func (b *TxBuilder) CreatePSBT(ctx context.Context, m *manifest.Manifest, r resolver.Resolver,
	source chainsource.Source) (*psbt.Packet, error) {
	tx, err := b.BuildTransferTx(ctx, m, r)
	if err != nil {
		return nil, err
	}

	packet, err := BuildTransferPSBT(ctx, tx, source)
	if err != nil {
		return nil, err
	}

	setInputsHelpingKeys(packet, m.Funded())

	b.log.WithField("txid", tx.TxHash().String()).Debugf("created psbt with %d inputs", len(packet.Inputs))

	return packet, nil
}

// EncodePSBT returns base64 encoded binary PSBT.
func EncodePSBT(packet *psbt.Packet) (string, error) {
	return packet.B64Encode()
}

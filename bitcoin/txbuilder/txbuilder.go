// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	"github.com/sirupsen/logrus"

	"github.com/BoostyLabs/ordtransfer/bitcoin"
	"github.com/BoostyLabs/ordtransfer/bitcoin/resolver"
	"github.com/BoostyLabs/ordtransfer/bitcoin/utils"
	"github.com/BoostyLabs/ordtransfer/internal/logger"
	"github.com/BoostyLabs/ordtransfer/manifest"
)

// txVersion defines transaction version for this builder.
const txVersion int32 = 2

// TxBuilder provides inscriptions transfer transaction building related logic.
type TxBuilder struct {
	networkParams *chaincfg.Params
	feeOffset     btcutil.Amount
	log           *logrus.Entry
}

// Option configures TxBuilder.
type Option func(*TxBuilder)

// WithFeeOffset sets amount in satoshi added to every fee estimation.
func WithFeeOffset(offset btcutil.Amount) Option {
	return func(b *TxBuilder) {
		b.feeOffset = offset
	}
}

// NewTxBuilder is a constructor for TxBuilder.
func NewTxBuilder(networkParams *chaincfg.Params, opts ...Option) *TxBuilder {
	b := &TxBuilder{
		networkParams: networkParams,
		feeOffset:     DefaultFeeOffset,
		log:           logger.Module("txbuilder"),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// BuildTransferTx constructs unsigned inscriptions transfer transaction.
// Inputs and outputs keep manifest transfers order, input #i is moved to output #i.
//
//	Tx struct
//	inputs:
//	┌─────────┬───────────────┬────────────────────────────────────────┐
//	│  index  │     type      │             description                │
//	├=========┼===============┼========================================┤
//	│ 0 - k-1 │ inscription   │ one per transfer, outputs holding      │
//	│         │               │ inscriptions.                          │
//	├─────────┼───────────────┼────────────────────────────────────────┤
//	│       k │ funding input │ optional, pays the fee, no output of   │
//	│         │               │ its own.                               │
//	└─────────┴───────────────┴────────────────────────────────────────┘
//
//	outputs:
//	┌─────────┬───────────────┬────────────────────────────────────────┐
//	│  index  │     type      │             description                │
//	├=========┼===============┼========================================┤
//	│ 0 - k-1 │ transfer      │ one per transfer, transfer amount to   │
//	│         │               │ the transfer address.                  │
//	├─────────┼───────────────┼────────────────────────────────────────┤
//	│       k │ anchor        │ mandatory, dust amount to the change   │
//	│         │               │ address, spent later to bump the fee.  │
//	└─────────┴───────────────┴────────────────────────────────────────┘
func (b *TxBuilder) BuildTransferTx(ctx context.Context, m *manifest.Manifest, r resolver.Resolver) (*wire.MsgTx, error) {
	tx := wire.NewMsgTx(txVersion)
	for i, transfer := range m.Transfers {
		coin, err := b.transferCoin(ctx, i, transfer, r)
		if err != nil {
			return nil, err
		}

		script, err := b.addressScript(transfer.Address)
		if err != nil {
			return nil, err
		}

		tx.AddTxIn(wire.NewTxIn(&coin.OutPoint, nil, nil))
		tx.AddTxOut(wire.NewTxOut(int64(coin.Amount), script))

		b.log.WithFields(logrus.Fields{
			"input":   coin.OutPoint.String(),
			"address": transfer.Address,
			"amount":  int64(coin.Amount),
		}).Debugf("added transfer #%d", i)
	}

	if m.FundingOutpoint != nil {
		tx.AddTxIn(wire.NewTxIn(&m.FundingOutpoint.OutPoint, nil, nil))
	}

	changeScript, err := b.addressScript(m.ChangeAddress)
	if err != nil {
		return nil, err
	}

	// anchor output for CPFP.
	tx.AddTxOut(wire.NewTxOut(int64(bitcoin.DustAmount), changeScript))

	if err = CheckTransferShape(tx, len(m.Transfers), m.Funded()); err != nil {
		panic(err)
	}

	return tx, nil
}

// CheckTransferShape verifies inputs and outputs layout of transfer transaction.
func CheckTransferShape(tx *wire.MsgTx, transfers int, funded bool) error {
	inputs, outputs := len(tx.TxIn), len(tx.TxOut)

	switch {
	case funded && inputs != outputs:
		return fmt.Errorf("funded transfer must have the same number of inputs and outputs: %d != %d", inputs, outputs)
	case !funded && inputs != outputs-1:
		return fmt.Errorf("unfunded transfer must have one input less than outputs: %d != %d-1", inputs, outputs)
	case outputs != transfers+1:
		return fmt.Errorf("transfer must have one output per transfer plus anchor output: %d != %d+1", outputs, transfers)
	case tx.TxOut[outputs-1].Value != int64(bitcoin.DustAmount):
		return fmt.Errorf("last output must be dust anchor output: %d != %d", tx.TxOut[outputs-1].Value, bitcoin.DustAmount)
	}

	return nil
}

// transferCoin returns input outpoint and output amount for transfer.
// Explicit values of transfer win over resolved ones, resolver is asked only if something is missing.
func (b *TxBuilder) transferCoin(ctx context.Context, idx int, transfer manifest.Transfer, r resolver.Resolver) (bitcoin.Coin, error) {
	subject := fmt.Sprintf("transfer #%d", idx)

	if transfer.Outpoint == nil && transfer.InscriptionID == "" {
		return bitcoin.Coin{}, bitcoin.ValidationError(bitcoin.ErrMissingReference, subject, nil)
	}

	var coin bitcoin.Coin
	if transfer.Outpoint != nil {
		coin.OutPoint = transfer.Outpoint.OutPoint
	}

	if transfer.Amount != nil {
		if *transfer.Amount <= 0 {
			return bitcoin.Coin{}, bitcoin.ValidationError(nil, subject, errors.New("amount must be positive"))
		}

		coin.Amount = btcutil.Amount(*transfer.Amount)
		coin.HasAmount = true
	}

	if transfer.Outpoint != nil && coin.HasAmount {
		return coin, nil
	}

	if transfer.InscriptionID == "" {
		return bitcoin.Coin{}, bitcoin.ValidationError(bitcoin.ErrMissingAmount, subject, nil)
	}

	resolved, err := r.Resolve(ctx, transfer.InscriptionID)
	if err != nil {
		return bitcoin.Coin{}, err
	}

	if transfer.Outpoint == nil {
		coin.OutPoint = resolved.OutPoint
	}

	if !coin.HasAmount {
		if !resolved.HasAmount {
			return bitcoin.Coin{}, bitcoin.ValidationError(bitcoin.ErrMissingAmount, subject, nil)
		}
		if resolved.Amount <= 0 {
			return bitcoin.Coin{}, bitcoin.ValidationError(nil, subject,
				fmt.Errorf("resolved amount %d of %s must be positive", int64(resolved.Amount), transfer.InscriptionID))
		}

		coin.Amount = resolved.Amount
		coin.HasAmount = true
	}

	return coin, nil
}

// addressScript returns locking script for address of builder network.
func (b *TxBuilder) addressScript(address string) ([]byte, error) {
	script, err := utils.AddressScript(address, b.networkParams)
	if err != nil {
		return nil, bitcoin.ValidationError(bitcoin.ErrInvalidAddress, address, err)
	}

	return script, nil
}

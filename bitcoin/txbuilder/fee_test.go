// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/mempool"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/ordtransfer/bitcoin"
	"github.com/BoostyLabs/ordtransfer/bitcoin/txbuilder"
	"github.com/BoostyLabs/ordtransfer/manifest"
)

func TestEstimateFee(t *testing.T) {
	ctx := context.Background()
	builder := txbuilder.NewTxBuilder(&chaincfg.RegressionNetParams)
	templates := txbuilder.NewWitnessTemplates()
	r := testResolver(t)
	changeAddress := regtestAddress(t, 0x01)
	receiver := regtestAddress(t, 0x02)
	singleSig := txbuilder.WalletType{Kind: txbuilder.SingleSigTaproot}
	multiSig := txbuilder.WalletType{Kind: txbuilder.MultiSigSegwit, Threshold: 2, Max: 3}

	newManifest := func(feeRate uint64, ids ...string) *manifest.Manifest {
		m := &manifest.Manifest{FeeRate: feeRate, ChangeAddress: changeAddress}
		for _, id := range ids {
			m.Transfers = append(m.Transfers, manifest.Transfer{InscriptionID: id, Address: receiver})
		}
		return m
	}

	t.Run("single transfer", func(t *testing.T) {
		m := newManifest(5, "abc")

		tx, err := builder.BuildTransferTx(ctx, m, r)
		require.NoError(t, err)
		require.Len(t, tx.TxIn, 1)
		require.Len(t, tx.TxOut, 2)

		// one transfer input and one synthetic funding input, 64 bytes witness each.
		sized := tx.Copy()
		sized.AddTxIn(wire.NewTxIn(&wire.OutPoint{}, nil, nil))
		for _, in := range sized.TxIn {
			in.Witness = wire.TxWitness{make([]byte, 64)}
		}
		vSize := mempool.GetTxVirtualSize(btcutil.NewTx(sized))
		require.EqualValues(t, 212, vSize)

		fee, err := builder.EstimateFee(ctx, m, r, templates, singleSig)
		require.NoError(t, err)
		require.Equal(t, btcutil.Amount(vSize*5)+bitcoin.DustAmount, fee)
		require.EqualValues(t, 1606, fee)
	})

	t.Run("funded manifest adds no synthetic input", func(t *testing.T) {
		unfunded := newManifest(3, "abc")
		funded := newManifest(3, "abc")
		funded.FundingOutpoint = outPoint(t, fundingTxID+":0")

		unfundedFee, err := builder.EstimateFee(ctx, unfunded, r, templates, singleSig)
		require.NoError(t, err)
		fundedFee, err := builder.EstimateFee(ctx, funded, r, templates, singleSig)
		require.NoError(t, err)
		require.Equal(t, unfundedFee, fundedFee)
	})

	t.Run("fee offset", func(t *testing.T) {
		m := newManifest(5, "abc")
		legacy := txbuilder.NewTxBuilder(&chaincfg.RegressionNetParams, txbuilder.WithFeeOffset(txbuilder.LegacyFeeOffset))

		fee, err := builder.EstimateFee(ctx, m, r, templates, singleSig)
		require.NoError(t, err)
		legacyFee, err := legacy.EstimateFee(ctx, m, r, templates, singleSig)
		require.NoError(t, err)
		require.Equal(t, txbuilder.LegacyFeeOffset-txbuilder.DefaultFeeOffset, legacyFee-fee)
	})

	t.Run("zero fee rate", func(t *testing.T) {
		fee, err := builder.EstimateFee(ctx, newManifest(0, "abc"), r, templates, singleSig)
		require.NoError(t, err)
		require.Equal(t, txbuilder.DefaultFeeOffset, fee)
	})

	t.Run("monotonic in fee rate", func(t *testing.T) {
		var previous btcutil.Amount
		for _, rate := range []uint64{1, 2, 10, 100} {
			fee, err := builder.EstimateFee(ctx, newManifest(rate, "abc", "def"), r, templates, singleSig)
			require.NoError(t, err)
			require.Greater(t, fee, previous)
			previous = fee
		}
	})

	t.Run("monotonic in transfers count", func(t *testing.T) {
		var previous btcutil.Amount
		ids := []string{"abc", "def", "abc", "def"}
		for i := 1; i <= len(ids); i++ {
			fee, err := builder.EstimateFee(ctx, newManifest(2, ids[:i]...), r, templates, singleSig)
			require.NoError(t, err)
			require.Greater(t, fee, previous)
			previous = fee
		}
	})

	t.Run("multi sig costs more", func(t *testing.T) {
		m := newManifest(4, "abc")

		singleFee, err := builder.EstimateFee(ctx, m, r, templates, singleSig)
		require.NoError(t, err)
		multiFee, err := builder.EstimateFee(ctx, m, r, templates, multiSig)
		require.NoError(t, err)
		require.Greater(t, multiFee, singleFee)
	})

	t.Run("manifest is not modified", func(t *testing.T) {
		m := newManifest(7, "abc", "def")
		m.FundingOutpoint = outPoint(t, fundingTxID+":1")
		m.Transfers[1].Amount = amountPtr(1000)
		snapshot := *m
		snapshot.Transfers = append([]manifest.Transfer(nil), m.Transfers...)

		_, err := builder.EstimateFee(ctx, m, r, templates, multiSig)
		require.NoError(t, err)
		require.Equal(t, snapshot, *m)
		require.EqualValues(t, 1000, *m.Transfers[1].Amount)
	})

	t.Run("fee rate bounded by supply", func(t *testing.T) {
		// 212 vB for one unfunded single sig transfer.
		maxRate := uint64(btcutil.MaxSatoshi-txbuilder.DefaultFeeOffset) / 212

		fee, err := builder.EstimateFee(ctx, newManifest(maxRate, "abc"), r, templates, singleSig)
		require.NoError(t, err)
		require.LessOrEqual(t, fee, btcutil.Amount(btcutil.MaxSatoshi))
		require.Greater(t, fee, btcutil.Amount(0))

		tests := []uint64{maxRate + 1, 1 << 56, 1 << 63, math.MaxUint64}
		for _, rate := range tests {
			fee, err := builder.EstimateFee(ctx, newManifest(rate, "abc"), r, templates, singleSig)
			require.Error(t, err, rate)
			require.True(t, errors.Is(err, bitcoin.ErrValidation))
			require.True(t, errors.Is(err, bitcoin.ErrFeeRateTooHigh))
			require.Zero(t, fee)
		}

		huge := txbuilder.NewTxBuilder(&chaincfg.RegressionNetParams, txbuilder.WithFeeOffset(btcutil.MaxSatoshi+1))
		_, err = huge.EstimateFee(ctx, newManifest(0, "abc"), r, templates, singleSig)
		require.True(t, errors.Is(err, bitcoin.ErrFeeRateTooHigh))
	})

	t.Run("unsupported wallet", func(t *testing.T) {
		_, err := builder.EstimateFee(ctx, newManifest(1, "abc"), r, templates,
			txbuilder.WalletType{Kind: txbuilder.MultiSigSegwit, Threshold: 3, Max: 5})
		require.Error(t, err)
		require.True(t, errors.Is(err, bitcoin.ErrConfiguration))
		require.True(t, errors.Is(err, bitcoin.ErrUnsupportedWalletType))
	})

	t.Run("resolution failure", func(t *testing.T) {
		_, err := builder.EstimateFee(ctx, newManifest(1, "xyz"), r, templates, singleSig)
		require.Error(t, err)
		require.True(t, errors.Is(err, bitcoin.ErrInscriptionNotFound))
	})
}

func TestVirtualSize(t *testing.T) {
	tx := wire.NewMsgTx(2)
	tx.AddTxIn(wire.NewTxIn(&wire.OutPoint{}, nil, nil))
	tx.AddTxOut(wire.NewTxOut(546, make([]byte, 34)))
	witness := wire.TxWitness{make([]byte, 64)}

	withFunding := txbuilder.VirtualSize(tx, witness, true)
	withoutFunding := txbuilder.VirtualSize(tx, witness, false)
	require.Greater(t, withFunding, withoutFunding)

	// measured transaction is a copy.
	require.Len(t, tx.TxIn, 1)
	require.Empty(t, tx.TxIn[0].Witness)
}

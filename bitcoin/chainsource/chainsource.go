// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

// Package chainsource provides previous transactions lookup for PSBT enrichment.
package chainsource

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Source returns full transaction by its hash.
type Source interface {
	Transaction(ctx context.Context, hash *chainhash.Hash) (*wire.MsgTx, error)
}

// DefaultEsploraURL returns esplora api base url for the network.
func DefaultEsploraURL(params *chaincfg.Params) (string, error) {
	switch params.Net {
	case chaincfg.MainNetParams.Net:
		return "https://mempool.space/api", nil
	case chaincfg.TestNet3Params.Net:
		return "https://mempool.space/testnet/api", nil
	case chaincfg.SigNetParams.Net:
		return "https://mempool.space/signet/api", nil
	case chaincfg.RegressionNetParams.Net:
		return "http://localhost:6002/api", nil
	default:
		return "", fmt.Errorf("no esplora endpoint for %s network", params.Name)
	}
}

// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package chainsource

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/BoostyLabs/ordtransfer/internal/logger"
)

// maxTxHexSize limits esplora reply size, hex of the largest standard transaction fits.
const maxTxHexSize = 2 * 4_000_000

// Esplora fetches transactions from esplora compatible REST api (mempool.space, blockstream.info).
type Esplora struct {
	baseURL string
	client  *http.Client
}

// NewEsplora is a constructor for Esplora.
func NewEsplora(baseURL string, client *http.Client) *Esplora {
	if client == nil {
		client = http.DefaultClient
	}

	return &Esplora{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Transaction requests {baseURL}/tx/{txid}/hex and deserializes the reply.
func (e *Esplora) Transaction(ctx context.Context, hash *chainhash.Hash) (*wire.MsgTx, error) {
	endpoint := fmt.Sprintf("%s/tx/%s/hex", e.baseURL, hash)
	logger.Module("chainsource").WithField("url", endpoint).Debug("fetching transaction")

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("esplora replied %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTxHexSize))
	if err != nil {
		return nil, err
	}

	raw, err := hex.DecodeString(strings.TrimSpace(string(body)))
	if err != nil {
		return nil, err
	}

	tx := new(wire.MsgTx)
	if err = tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, err
	}

	if txHash := tx.TxHash(); !txHash.IsEqual(hash) {
		return nil, fmt.Errorf("esplora returned transaction %s instead of %s", txHash, hash)
	}

	return tx, nil
}

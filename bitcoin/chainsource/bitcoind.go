// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package chainsource

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"
)

// Bitcoind fetches transactions with getrawtransaction of bitcoind (or btcd) json-rpc.
// Node must run with txindex for confirmed transactions not belonging to its wallet.
type Bitcoind struct {
	client *rpcclient.Client
}

// NewBitcoind is a constructor for Bitcoind, connects in http post mode without tls.
func NewBitcoind(host, user, password string) (*Bitcoind, error) {
	connCfg := &rpcclient.ConnConfig{
		Host:         host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}

	client, err := rpcclient.New(connCfg, nil)
	if err != nil {
		return nil, err
	}

	return &Bitcoind{client: client}, nil
}

// Transaction returns transaction by hash. Context is not honored by rpcclient.
func (b *Bitcoind) Transaction(_ context.Context, hash *chainhash.Hash) (*wire.MsgTx, error) {
	tx, err := b.client.GetRawTransaction(hash)
	if err != nil {
		return nil, err
	}

	return tx.MsgTx(), nil
}

// Close shuts down rpc client.
func (b *Bitcoind) Close() {
	b.client.Shutdown()
}

// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package chainsource

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cached wraps Source with LRU cache of fetched transactions.
// Transactions are returned as shared pointers and must not be modified.
type Cached struct {
	source Source
	cache  *lru.Cache[chainhash.Hash, *wire.MsgTx]
}

// NewCached is a constructor for Cached.
func NewCached(source Source, size int) (*Cached, error) {
	cache, err := lru.New[chainhash.Hash, *wire.MsgTx](size)
	if err != nil {
		return nil, err
	}

	return &Cached{source: source, cache: cache}, nil
}

// Transaction returns cached transaction or fetches it from underlying source.
func (c *Cached) Transaction(ctx context.Context, hash *chainhash.Hash) (*wire.MsgTx, error) {
	if tx, ok := c.cache.Get(*hash); ok {
		return tx, nil
	}

	tx, err := c.source.Transaction(ctx, hash)
	if err != nil {
		return nil, err
	}

	c.cache.Add(*hash, tx)
	return tx, nil
}

// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package resolver

import (
	"context"
	"encoding/json"
	"os"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/BoostyLabs/ordtransfer/bitcoin"
)

// StaticEntry describes one record of static lookup table file.
type StaticEntry struct {
	OutPoint bitcoin.OutPoint `json:"outpoint"`
	Amount   *int64           `json:"amount,omitempty"` // in Satoshi.
}

// Static resolves inscription ids with lookup table fixed at construction.
type Static struct {
	table map[string]StaticEntry
}

// NewStatic is a constructor for Static. The table is copied.
func NewStatic(table map[string]StaticEntry) *Static {
	s := &Static{table: make(map[string]StaticEntry, len(table))}
	for id, entry := range table {
		s.table[id] = entry
	}

	return s
}

// NewStaticFromFile loads lookup table from JSON file: {"<inscription id>": {"outpoint": "<txid>:<vout>", "amount": 10000}}.
func NewStaticFromFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bitcoin.ConfigurationError(nil, path, err)
	}

	var table map[string]StaticEntry
	if err = json.Unmarshal(data, &table); err != nil {
		return nil, bitcoin.ConfigurationError(nil, path, err)
	}

	return &Static{table: table}, nil
}

// WriteStaticFile writes lookup table to JSON file readable by NewStaticFromFile.
func WriteStaticFile(path string, table map[string]StaticEntry) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Resolve returns stored coin for inscription id.
func (s *Static) Resolve(_ context.Context, inscriptionID string) (bitcoin.Coin, error) {
	entry, ok := s.table[inscriptionID]
	if !ok {
		return bitcoin.Coin{}, bitcoin.ResolutionError(bitcoin.ErrInscriptionNotFound, inscriptionID, nil)
	}

	coin := bitcoin.Coin{OutPoint: entry.OutPoint.OutPoint}
	if entry.Amount != nil {
		coin.Amount = btcutil.Amount(*entry.Amount)
		coin.HasAmount = true
	}

	return coin, nil
}

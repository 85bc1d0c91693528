// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

// Package manifest describes inscription transfer request and its JSON file form.
package manifest

import (
	"encoding/json"
	"os"

	"github.com/BoostyLabs/ordtransfer/bitcoin"
)

// Manifest describes inscription transfer request.
type Manifest struct {
	FeeRate         uint64            `json:"fee_rate"` // in satoshi per virtual byte.
	FundingOutpoint *bitcoin.OutPoint `json:"funding_outpoint"`
	// ChangeAddress receives the dust output, spendable later as an anchor for CPFP.
	ChangeAddress string     `json:"change_address"`
	Transfers     []Transfer `json:"transfers"`
}

// Transfer describes one inscription movement.
// Either InscriptionID or Outpoint must be set, Outpoint wins when both are.
type Transfer struct {
	InscriptionID string            `json:"inscription_id,omitempty"`
	Outpoint      *bitcoin.OutPoint `json:"outpoint,omitempty"`
	Address       string            `json:"address"`
	Amount        *int64            `json:"amount,omitempty"` // in Satoshi, resolved when omitted.
}

// Blank returns manifest template with one empty transfer.
func Blank() *Manifest {
	return &Manifest{
		FeeRate:   1,
		Transfers: []Transfer{{}},
	}
}

// FromJSONFile reads manifest from JSON file.
func FromJSONFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m := new(Manifest)
	if err = json.Unmarshal(data, m); err != nil {
		return nil, bitcoin.ValidationError(nil, path, err)
	}

	return m, nil
}

// ToJSONFile writes manifest to JSON file.
func (m *Manifest) ToJSONFile(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Funded returns true if manifest brings its own funding input.
func (m *Manifest) Funded() bool {
	return m.FundingOutpoint != nil
}

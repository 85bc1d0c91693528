// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
)

// DustAmount defines the smallest non-dust output value in satoshi.
// Used for the trailing anchor output that a later transaction spends to bump the fee (CPFP).
const DustAmount btcutil.Amount = 546

// OutPoint describes reference to a previous transaction output in "<txid>:<vout>" text form.
type OutPoint struct {
	wire.OutPoint
}

// NewOutPointFromString parses outpoint from "<txid>:<vout>" string.
func NewOutPointFromString(s string) (*OutPoint, error) {
	op, err := wire.NewOutPointFromString(s)
	if err != nil {
		return nil, err
	}

	return &OutPoint{OutPoint: *op}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (o OutPoint) MarshalText() ([]byte, error) {
	return []byte(o.OutPoint.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OutPoint) UnmarshalText(text []byte) error {
	op, err := wire.NewOutPointFromString(string(text))
	if err != nil {
		return err
	}

	o.OutPoint = *op
	return nil
}

// Coin describes resolved inscription location.
type Coin struct {
	OutPoint  wire.OutPoint
	Amount    btcutil.Amount // in Satoshi, valid only if HasAmount is set.
	HasAmount bool           // false when the source knows the location but not the value.
}

// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package inscriptions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// satpointSeparator defines separator between satpoint components.
const satpointSeparator string = ":"

// Satpoint describes location of a sat: the output holding it and the offset inside the output value.
type Satpoint struct {
	OutPoint wire.OutPoint
	Offset   uint64
}

// ParseSatpoint parses satpoint from "<txid>:<vout>:<offset>" string.
// At least three components are required, the first two form the outpoint and the third the offset.
// Trailing components are ignored.
func ParseSatpoint(s string) (Satpoint, error) {
	parts := strings.Split(s, satpointSeparator)
	if len(parts) < 3 {
		return Satpoint{}, fmt.Errorf("invalid satpoint format: %q", s)
	}

	if len(parts[0]) != chainhash.MaxHashStringSize {
		return Satpoint{}, fmt.Errorf("invalid satpoint txid: %q", s)
	}

	txID, err := chainhash.NewHashFromStr(parts[0])
	if err != nil {
		return Satpoint{}, err
	}

	vout, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Satpoint{}, fmt.Errorf("invalid satpoint output index: %q", s)
	}

	offset, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return Satpoint{}, fmt.Errorf("invalid satpoint offset: %q", s)
	}

	return Satpoint{OutPoint: *wire.NewOutPoint(txID, uint32(vout)), Offset: offset}, nil
}

// String returns satpoint as string.
func (sp Satpoint) String() string {
	return sp.OutPoint.String() + satpointSeparator + strconv.FormatUint(sp.Offset, 10)
}

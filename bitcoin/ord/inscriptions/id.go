// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package inscriptions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// idSeparator defines separator between TxID and Index in inscription ID.
const idSeparator string = "i"

// ID describes inscription identifier.
type ID struct {
	TxID  chainhash.Hash // Reveal transaction ID.
	Index uint32         // The index of the inscription in the reveal transaction.
}

// ParseID parses inscription ID from "<txid>i<index>" string.
func ParseID(idStr string) (ID, error) {
	txID, index, ok := strings.Cut(idStr, idSeparator)
	if !ok || len(txID) != chainhash.MaxHashStringSize {
		return ID{}, fmt.Errorf("invalid inscription ID format: %q", idStr)
	}

	hash, err := chainhash.NewHashFromStr(txID)
	if err != nil {
		return ID{}, err
	}

	i, err := strconv.ParseUint(index, 10, 32)
	if err != nil {
		return ID{}, fmt.Errorf("invalid inscription ID index: %q", idStr)
	}

	return ID{TxID: *hash, Index: uint32(i)}, nil
}

// String returns inscription ID as string.
func (id ID) String() string {
	return fmt.Sprintf("%s%s%d", id.TxID.String(), idSeparator, id.Index)
}

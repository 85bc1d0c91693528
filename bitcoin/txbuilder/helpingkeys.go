// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"errors"
	"math"

	"github.com/btcsuite/btcd/btcutil/psbt"
)

// ErrUnknownInputsHelpingKey defines that inputs help keys is unknown.
var ErrUnknownInputsHelpingKey = errors.New("unknown inputs help keys")

// InputsHelpingKey defines type for additional data in PSBT Unknowns field
// to distinguish input types and their indexes.
type InputsHelpingKey byte

const (
	// InscriptionInputsHelpingKey defines key for inputs holding transferred inscriptions.
	InscriptionInputsHelpingKey InputsHelpingKey = 0x10
	// FundingInputsHelpingKey defines key for fee paying input.
	FundingInputsHelpingKey InputsHelpingKey = 0x21
)

// InputsHelpingKeyFromBytes parses bytes array into InputsHelpingKey if any.
func InputsHelpingKeyFromBytes(b []byte) (InputsHelpingKey, error) {
	if len(b) != 1 {
		return 0, ErrUnknownInputsHelpingKey
	}

	switch b[0] {
	case InscriptionInputsHelpingKey.Byte():
		return InscriptionInputsHelpingKey, nil
	case FundingInputsHelpingKey.Byte():
		return FundingInputsHelpingKey, nil
	}

	return 0, ErrUnknownInputsHelpingKey
}

// Byte returns InputsHelpingKey as byte.
func (k InputsHelpingKey) Byte() byte {
	return byte(k)
}

// Bytes returns InputsHelpingKey as bytes array.
func (k InputsHelpingKey) Bytes() []byte {
	return []byte{byte(k)}
}

// setInputsHelpingKeys tags transfer inputs and funding input of packet in its global Unknowns.
// Indexes are stored one byte each, larger transactions are left untagged.
func setInputsHelpingKeys(packet *psbt.Packet, funded bool) {
	inputs := len(packet.UnsignedTx.TxIn)
	if inputs == 0 || inputs > math.MaxUint8+1 {
		return
	}

	transfers := inputs
	if funded {
		transfers--
	}

	if transfers > 0 {
		indexes := make([]byte, transfers)
		for i := range indexes {
			indexes[i] = byte(i)
		}

		packet.Unknowns = append(packet.Unknowns, &psbt.Unknown{Key: InscriptionInputsHelpingKey.Bytes(), Value: indexes})
	}

	if funded {
		packet.Unknowns = append(packet.Unknowns, &psbt.Unknown{
			Key:   FundingInputsHelpingKey.Bytes(),
			Value: []byte{byte(inputs - 1)},
		})
	}
}

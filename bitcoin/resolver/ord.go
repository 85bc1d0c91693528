// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/BoostyLabs/ordtransfer/bitcoin"
	"github.com/BoostyLabs/ordtransfer/bitcoin/ord/inscriptions"
	"github.com/BoostyLabs/ordtransfer/internal/logger"
)

// inscriptionResponse describes fields of ord server inscription reply used for resolution.
type inscriptionResponse struct {
	OutputValue *int64  `json:"output_value"`
	Satpoint    *string `json:"satpoint"`
}

// Ord resolves inscription ids with ord server api.
type Ord struct {
	baseURL string
	client  *http.Client
}

// NewOrd is a constructor for Ord.
func NewOrd(baseURL string, client *http.Client) *Ord {
	if client == nil {
		client = http.DefaultClient
	}

	return &Ord{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Resolve requests {baseURL}/inscriptions/{id}, the coin is taken from satpoint with offset dropped.
// Inscription id must be in "<txid>i<index>" form.
func (o *Ord) Resolve(ctx context.Context, inscriptionID string) (bitcoin.Coin, error) {
	id, err := inscriptions.ParseID(inscriptionID)
	if err != nil {
		return bitcoin.Coin{}, bitcoin.ValidationError(nil, inscriptionID, err)
	}

	endpoint := fmt.Sprintf("%s/inscriptions/%s", o.baseURL, id.String())
	logger.Module("resolver").WithField("url", endpoint).Debug("resolving inscription")

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return bitcoin.Coin{}, bitcoin.ResolutionError(bitcoin.ErrTransport, inscriptionID, err)
	}
	request.Header.Set("Accept", "application/json")

	resp, err := o.client.Do(request)
	if err != nil {
		return bitcoin.Coin{}, bitcoin.ResolutionError(bitcoin.ErrTransport, inscriptionID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return bitcoin.Coin{}, bitcoin.ResolutionError(bitcoin.ErrInscriptionNotFound, inscriptionID, nil)
	case resp.StatusCode != http.StatusOK:
		return bitcoin.Coin{}, bitcoin.ResolutionError(bitcoin.ErrTransport, inscriptionID, errors.New(resp.Status))
	}

	var reply inscriptionResponse
	if err = json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return bitcoin.Coin{}, bitcoin.ResolutionError(bitcoin.ErrMalformedResponse, inscriptionID, err)
	}

	if reply.OutputValue == nil {
		return bitcoin.Coin{}, bitcoin.ResolutionError(bitcoin.ErrMalformedResponse, inscriptionID, errors.New("output_value not found"))
	}
	if *reply.OutputValue < 0 {
		return bitcoin.Coin{}, bitcoin.ResolutionError(bitcoin.ErrMalformedResponse, inscriptionID, errors.New("negative output_value"))
	}
	if reply.Satpoint == nil {
		return bitcoin.Coin{}, bitcoin.ResolutionError(bitcoin.ErrMalformedResponse, inscriptionID, errors.New("satpoint not found"))
	}

	satpoint, err := inscriptions.ParseSatpoint(*reply.Satpoint)
	if err != nil {
		return bitcoin.Coin{}, bitcoin.ResolutionError(bitcoin.ErrMalformedResponse, inscriptionID, err)
	}

	return bitcoin.Coin{
		OutPoint:  satpoint.OutPoint,
		Amount:    btcutil.Amount(*reply.OutputValue),
		HasAmount: true,
	}, nil
}

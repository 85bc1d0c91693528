// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

// Package resolver maps inscription ids to the outputs currently holding them.
package resolver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BoostyLabs/ordtransfer/bitcoin"
)

// Resolver resolves inscription id into the coin holding the inscription.
// Implemented by Static and Ord only.
type Resolver interface {
	Resolve(ctx context.Context, inscriptionID string) (bitcoin.Coin, error)
}

// Kinds of resolvers accepted by New.
const (
	KindStatic = "static"
	KindOrd    = "ord"
)

// New creates resolver of the given kind. Location is a file path for static resolver and
// base url for ord resolver. The choice is made once, unknown kinds fail.
func New(kind, location string) (Resolver, error) {
	switch kind {
	case KindStatic:
		return NewStaticFromFile(location)
	case KindOrd:
		return NewOrd(location, http.DefaultClient), nil
	default:
		return nil, bitcoin.ConfigurationError(bitcoin.ErrUnsupportedResolver, kind, fmt.Errorf("known kinds: %s, %s", KindStatic, KindOrd))
	}
}

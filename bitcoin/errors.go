// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by this module matches exactly one of them with errors.Is.
var (
	// ErrConfiguration defines errors class for missing, unparseable or unsupported settings.
	ErrConfiguration = errors.New("configuration error")
	// ErrResolution defines errors class for inscription id resolution failures.
	ErrResolution = errors.New("resolution error")
	// ErrValidation defines errors class for invalid manifest data.
	ErrValidation = errors.New("validation error")
	// ErrChainLookup defines errors class for previous output fetch failures.
	ErrChainLookup = errors.New("chain lookup error")
)

var (
	// ErrInscriptionNotFound defines that inscription id is absent from the backing store.
	ErrInscriptionNotFound = errors.New("inscription id not found")
	// ErrTransport defines that remote service could not be reached or replied with failure status.
	ErrTransport = errors.New("transport failure")
	// ErrMalformedResponse defines that remote service reply could not be interpreted.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrInvalidAddress defines that address does not parse or belongs to another network.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrMissingReference defines that transfer has neither inscription id nor outpoint.
	ErrMissingReference = errors.New("transfer has neither inscription id nor outpoint")
	// ErrMissingAmount defines that transfer amount is neither given nor resolvable.
	ErrMissingAmount = errors.New("transfer amount is unknown")
	// ErrFeeRateTooHigh defines that fee for requested fee rate exceeds bitcoin supply.
	ErrFeeRateTooHigh = errors.New("fee rate too high")
	// ErrPreviousOutputNotFound defines that previous transaction has no output with referenced index.
	ErrPreviousOutputNotFound = errors.New("previous output not found")
	// ErrUnsupportedWalletType defines that dummy witness is not modeled for wallet configuration.
	ErrUnsupportedWalletType = errors.New("unsupported wallet type")
	// ErrUnsupportedResolver defines that inscription resolver kind is not implemented.
	ErrUnsupportedResolver = errors.New("unsupported inscription resolver")
)

// Error is the error type to describe domain failures with details.
type Error struct {
	Class   error  // one of error classes.
	Kind    error  // specific sentinel, optional.
	Subject string // inscription id, txid, address or setting name the error is about.
	Err     error  // underlying cause, optional.
}

// NewError is a constructor for Error.
func NewError(class, kind error, subject string, cause error) *Error {
	return &Error{Class: class, Kind: kind, Subject: subject, Err: cause}
}

// Error returns error description.
func (e *Error) Error() string {
	var errMsg = e.Class.Error()

	if e.Kind != nil {
		errMsg += ": " + e.Kind.Error()
	}

	if e.Subject != "" {
		errMsg += fmt.Sprintf(" (%s)", e.Subject)
	}

	if e.Err != nil {
		errMsg += ": " + e.Err.Error()
	}

	return errMsg
}

// Is implements comparator method for [errors] package.
func (e *Error) Is(target error) bool {
	return target == e.Class || (e.Kind != nil && target == e.Kind)
}

// Unwrap returns underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigurationError returns configuration class error.
func ConfigurationError(kind error, subject string, cause error) error {
	return NewError(ErrConfiguration, kind, subject, cause)
}

// ResolutionError returns resolution class error.
func ResolutionError(kind error, subject string, cause error) error {
	return NewError(ErrResolution, kind, subject, cause)
}

// ValidationError returns validation class error.
func ValidationError(kind error, subject string, cause error) error {
	return NewError(ErrValidation, kind, subject, cause)
}

// ChainLookupError returns chain lookup class error.
func ChainLookupError(kind error, subject string, cause error) error {
	return NewError(ErrChainLookup, kind, subject, cause)
}

package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrWalletNotFound indicates the requested wallet does not exist
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrSurveyorNotFound indicates the requested surveyor does not exist
	ErrSurveyorNotFound = errors.New("surveyor not found")

	// ErrPledgeNotFound indicates the requested pledge does not exist
	ErrPledgeNotFound = errors.New("pledge not found")

	// ErrRateUnavailable indicates no exchange rate is published for the
	// requested currency
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)

// InvalidPaymentError indicates a custodian transaction submission was
// rejected or failed verification. Status carries the payment state
// reported by the custodian, when known.
type InvalidPaymentError struct {
	Status string
}

func (e *InvalidPaymentError) Error() string {
	if e.Status == "" {
		return "payment failed verification"
	}
	return fmt.Sprintf("payment failed verification: status %q", e.Status)
}

// BadDataError indicates client-supplied data is inconsistent with the
// system's records or invariants
type BadDataError struct {
	Reason string
}

func (e *BadDataError) Error() string {
	return fmt.Sprintf("bad data: %s", e.Reason)
}

// UpstreamError indicates a dependency (custodian, charge provider)
// returned an unusable response
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s error: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTransactionFailed is the fallback for FAILED transactions whose
	// reason code the SDK does not recognize. The gateway owns the reason
	// enumeration and introduces codes without notice.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrInsufficientFunds corresponds to the INSUFFICIENT_FUNDS reason code.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// ValidationError reports a request or configuration field that failed the
// client-side checks. It is returned before any network call is made, so the
// caller can fix the input and retry.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// TransactionError reports a transaction the gateway marked FAILED. It is a
// terminal business outcome, not a transient fault; the SDK never retries it.
type TransactionError struct {
	ReferenceID string
	Reason      Reason
}

func (e *TransactionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("transaction %s failed", e.ReferenceID)
	}
	return fmt.Sprintf("transaction %s failed: %s", e.ReferenceID, e.Reason)
}

// Unwrap yields the sentinel selected by the reason code, so callers branch
// on subtypes with errors.Is and recover the family with errors.As.
func (e *TransactionError) Unwrap() error { return e.Reason.Err() }

// NewTransactionError builds the error for a FAILED transaction record.
func NewTransactionError(referenceID string, reason Reason) *TransactionError {
	return &TransactionError{ReferenceID: referenceID, Reason: reason}
}

// TransportError reports a failure at the HTTP layer: a network fault, a
// non-success status code, or a malformed response body. StatusCode is zero
// when no response was received. The SDK propagates it unchanged.
type TransportError struct {
	Op         string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: gateway returned status %d", e.Op, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

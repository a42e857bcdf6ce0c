package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReasonErr(t *testing.T) {
	assert := assert.New(t)

	assert.True(errors.Is(ReasonInsufficientFunds.Err(), ErrInsufficientFunds))

	// Codes without a dedicated sentinel fall back to the generic failure.
	assert.True(errors.Is(Reason("PAYER_LIMIT_REACHED").Err(), ErrTransactionFailed))
	assert.True(errors.Is(Reason("").Err(), ErrTransactionFailed))
}

func TestTransactionError(t *testing.T) {
	assert := assert.New(t)

	err := NewTransactionError("ref-1", ReasonInsufficientFunds)
	assert.True(errors.Is(err, ErrInsufficientFunds))
	assert.False(errors.Is(err, ErrTransactionFailed))

	var terr *TransactionError
	require.True(t, errors.As(err, &terr))
	assert.Equal("ref-1", terr.ReferenceID)
	assert.Equal(ReasonInsufficientFunds, terr.Reason)
	assert.Contains(err.Error(), "INSUFFICIENT_FUNDS")
	assert.Contains(err.Error(), "ref-1")
}

func TestTransactionErrorUnknownReason(t *testing.T) {
	assert := assert.New(t)

	err := NewTransactionError("ref-2", Reason("SOMETHING_NEW"))
	assert.True(errors.Is(err, ErrTransactionFailed))
	assert.False(errors.Is(err, ErrInsufficientFunds))
}

func TestTransportError(t *testing.T) {
	assert := assert.New(t)

	err := &TransportError{Op: "POST /inpayments", StatusCode: 500, Body: []byte(`{"error":"boom"}`)}
	assert.Contains(err.Error(), "POST /inpayments")
	assert.Contains(err.Error(), "500")

	cause := errors.New("dial tcp: connection refused")
	err = &TransportError{Op: "GET /inpayments/x", Err: cause}
	assert.True(errors.Is(err, cause))
}

func TestValidationError(t *testing.T) {
	assert := assert.New(t)

	err := &ValidationError{Field: "amount", Message: "amount is required"}
	assert.Equal("amount is required", err.Error())
}

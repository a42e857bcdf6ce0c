package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Status is the gateway-reported state of a transaction.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusSuccessful Status = "SUCCESSFUL"
	StatusFailed     Status = "FAILED"
)

// Terminal reports whether no further state transition can occur. Status
// values the gateway introduces later are treated as non-terminal rather
// than rejected.
func (s Status) Terminal() bool {
	return s == StatusSuccessful || s == StatusFailed
}

// Payment is the server-reported view of a request-to-pay collection.
// Reason is populated when Status is FAILED. The SDK holds no reference to
// the record after returning it.
type Payment struct {
	ProcessingNumber string `json:"processingNumber"`
	Amount           string `json:"amount"`
	MSISDN           string `json:"msisdn"`
	Narration        string `json:"narration,omitempty"`
	Status           Status `json:"status"`
	Reason           Reason `json:"reason,omitempty"`
}

// AmountDecimal parses the gateway's decimal-as-text amount strictly, for
// reconciliation math.
func (p *Payment) AmountDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(p.Amount)
}

// Transfer is the server-reported view of an outbound transfer.
type Transfer struct {
	ProcessingNumber string `json:"processingNumber"`
	Amount           string `json:"amount"`
	MSISDN           string `json:"msisdn"`
	Narration        string `json:"narration,omitempty"`
	Status           Status `json:"status"`
	Reason           Reason `json:"reason,omitempty"`
}

// AmountDecimal parses the gateway's decimal-as-text amount strictly.
func (t *Transfer) AmountDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(t.Amount)
}

// RequestResult is what a create call resolves with: the locally generated
// correlation id plus the gateway's raw, uninterpreted HTTP response. The
// reference id is fabricated client side and never reconciled against the
// server's own identifier, so callers must not assume server-side
// uniqueness guarantees on it.
type RequestResult struct {
	ReferenceID string
	StatusCode  int
	Body        json.RawMessage
}

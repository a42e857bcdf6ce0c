package domain

import "strings"

// PaymentRequest is the input to a request-to-pay collection. The payer
// identified by MSISDN must authorize the debit on their side; the SDK only
// submits the request. Immutable once constructed.
type PaymentRequest struct {
	Amount           string `json:"amount"`
	ProcessingNumber string `json:"processingNumber"`
	MSISDN           string `json:"msisdn"`
	Narration        string `json:"narration,omitempty"`
}

// Validate runs the client-side field checks. Only the amount is checked;
// the gateway owns validation of the remaining fields.
func (r PaymentRequest) Validate() error {
	return validateAmount(r.Amount)
}

// TransferRequest is the input to an outbound transfer. Structurally
// parallel to PaymentRequest; MSISDN identifies the payee instead of the
// payer.
type TransferRequest struct {
	Amount           string `json:"amount"`
	ProcessingNumber string `json:"processingNumber"`
	MSISDN           string `json:"msisdn"`
	Narration        string `json:"narration,omitempty"`
}

// Validate runs the client-side field checks.
func (r TransferRequest) Validate() error {
	return validateAmount(r.Amount)
}

// validateAmount applies the gateway contract's documented tolerance: any
// string with a leading base-10 integer prefix passes, "12abc" included.
// AmountDecimal on the result records is the strict path.
func validateAmount(amount string) error {
	if amount == "" {
		return &ValidationError{Field: "amount", Message: "amount is required"}
	}
	if !hasNumericPrefix(amount) {
		return &ValidationError{Field: "amount", Message: "amount must be a number"}
	}
	return nil
}

func hasNumericPrefix(s string) bool {
	s = strings.TrimLeft(s, " \t\r\n")
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

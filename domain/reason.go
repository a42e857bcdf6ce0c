package domain

// Reason is a gateway-reported failure reason code, populated on records
// whose status is FAILED. The authoritative enumeration lives in the
// gateway's API contract; the SDK names only the codes that contract
// documents and folds everything else into ErrTransactionFailed.
type Reason string

const (
	ReasonInsufficientFunds Reason = "INSUFFICIENT_FUNDS"
)

var reasonSentinels = map[Reason]error{
	ReasonInsufficientFunds: ErrInsufficientFunds,
}

// Err maps the reason code to its sentinel error. Unknown and absent codes
// take the generic ErrTransactionFailed branch, so the mapping stays total
// as the gateway grows its code set.
func (r Reason) Err() error {
	if err, ok := reasonSentinels[r]; ok {
		return err
	}
	return ErrTransactionFailed
}

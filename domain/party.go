package domain

import (
	"strings"

	"github.com/google/uuid"
)

// PartyKind classifies a party identifier. The wire format never tags the
// type; it is implied by the identifier's shape.
type PartyKind string

const (
	PartyPhone PartyKind = "phone"
	PartyEmail PartyKind = "email"
	PartyCode  PartyKind = "code"
)

// KindOfParty classifies an msisdn value: email when it carries an "@",
// party code when it parses as a UUID, phone number otherwise.
func KindOfParty(msisdn string) PartyKind {
	if strings.Contains(msisdn, "@") {
		return PartyEmail
	}
	if _, err := uuid.Parse(msisdn); err == nil {
		return PartyCode
	}
	return PartyPhone
}

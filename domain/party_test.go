package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfParty(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(PartyPhone, KindOfParty("+15551234567"))
	assert.Equal(PartyPhone, KindOfParty("0788123456"))
	assert.Equal(PartyEmail, KindOfParty("payer@example.com"))
	assert.Equal(PartyCode, KindOfParty("9b2c50e9-7b0a-4a34-a87d-d45dc2e867ff"))
}

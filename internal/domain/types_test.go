package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gratia-labs/patron-ledger/internal/domain"
)

func TestAnonymousID(t *testing.T) {
	// the derivation is deterministic
	assert.Equal(t, domain.AnonymousID("viewing-1"), domain.AnonymousID("viewing-1"))
	assert.NotEqual(t, domain.AnonymousID("viewing-1"), domain.AnonymousID("viewing-2"))

	// hex-encoded sha256 is 64 characters
	assert.Len(t, domain.AnonymousID("viewing-1"), 64)

	// the original identifier never appears in the derived one
	assert.NotContains(t, domain.AnonymousID("viewing-1"), "viewing")
}

func TestPaymentVerdict_Accepted(t *testing.T) {
	accepted := &domain.PaymentVerdict{Status: domain.PaymentStatusAccepted}
	assert.True(t, accepted.Accepted())

	rejected := &domain.PaymentVerdict{Status: "rejected"}
	assert.False(t, rejected.Accepted())

	empty := &domain.PaymentVerdict{}
	assert.False(t, empty.Accepted())
}

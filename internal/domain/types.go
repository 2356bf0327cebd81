package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// Pledge statuses
const (
	PledgeStatusOpen   = "open"
	PledgeStatusClosed = "closed"
)

// AnonymousID derives a stable anonymized identifier from a user-linked
// identifier. The derivation is one-way so persisted records cannot be
// joined back to the originating user
func AnonymousID(uID string) string {
	sum := sha256.Sum256([]byte(uID))
	return hex.EncodeToString(sum[:])
}

// AdFreePricing converts settled satoshis into votes: a whole unit of
// satoshis is worth VotesPerUnit votes
type AdFreePricing struct {
	SatoshisPerUnit int64 `json:"satoshisPerUnit" validate:"required,gt=0"`
	VotesPerUnit    int   `json:"votesPerUnit" validate:"required,gt=0"`
}

// SurveyorPayload is the pricing payload carried by a surveyor
type SurveyorPayload struct {
	AdFree AdFreePricing `json:"adFree" validate:"required"`
}

// PaymentStatusAccepted is the custodian verdict for a settled transaction
const PaymentStatusAccepted = "accepted"

// PaymentVerdict is the custodian's response to a signed transaction
// submission
type PaymentVerdict struct {
	Status   string `json:"status"`
	Fee      int64  `json:"fee"`
	Satoshis int64  `json:"satoshis"`
	Hash     string `json:"hash"`
}

// Accepted reports whether the custodian settled the transaction
func (v *PaymentVerdict) Accepted() bool {
	return v.Status == PaymentStatusAccepted
}

// ChargeRecord is an immutable charge as reported by the payment processor
type ChargeRecord struct {
	Kind           string  `json:"kind"`
	Refunded       bool    `json:"refunded"`
	AmountRefunded int64   `json:"amountRefunded"`
	Paid           bool    `json:"paid"`
	Status         string  `json:"status"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
}

// ContributionResult is the outcome of a settled contribution, returned
// to the caller and published to the report stream
type ContributionResult struct {
	PaymentStamp int64  `json:"paymentStamp"`
	Satoshis     int64  `json:"satoshis"`
	Votes        int    `json:"votes"`
	Hash         string `json:"hash"`
}

// ContributionReport is published after a contribution settles
type ContributionReport struct {
	ReportID    string   `json:"reportId"`
	ViewingID   string   `json:"viewingId"`
	PaymentID   string   `json:"paymentId"`
	Address     string   `json:"address"`
	SurveyorID  string   `json:"surveyorId"`
	AltCurrency string   `json:"altcurrency"`
	Fee         int64    `json:"fee"`
	Satoshis    int64    `json:"satoshis"`
	Votes       int      `json:"votes"`
	SurveyorIDs []string `json:"surveyorIds"`
}

// PledgeReport is published when a pledge is recorded or its state changes
type PledgeReport struct {
	ReportID      string  `json:"reportId"`
	Address       string  `json:"address"`
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Satoshis      int64   `json:"satoshis,omitempty"`
	Status        string  `json:"status,omitempty"`
}

// WalletReport is published when an address balance is observed
type WalletReport struct {
	ReportID  string `json:"reportId"`
	PaymentID string `json:"paymentId"`
	Address   string `json:"address"`
	Satoshis  int64  `json:"satoshis"`
}

// Balance is a point-in-time balance observation for an address
type Balance struct {
	Satoshis    int64 `json:"satoshis"`
	Confirmed   int64 `json:"confirmed"`
	Unconfirmed int64 `json:"unconfirmed"`
}

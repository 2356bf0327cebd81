package rest

// ContributionRequest is the body of a contribution settlement
type ContributionRequest struct {
	ViewingID  string `json:"viewingId" binding:"required"`
	SurveyorID string `json:"surveyorId" binding:"required"`
	SignedTx   string `json:"signedTx" binding:"required"`
}

// PledgeRequest is the body of a pledge record
type PledgeRequest struct {
	TransactionID string  `json:"transactionId" binding:"required"`
	Actor         string  `json:"actor" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Fee           float64 `json:"fee" binding:"gte=0"`
	Currency      string  `json:"currency" binding:"required"`
	Status        string  `json:"status" binding:"omitempty,oneof=open closed"`
}

// PledgeUpdateRequest is the body of a pledge update
type PledgeUpdateRequest struct {
	EventID string `json:"eventId" binding:"required"`
	Status  string `json:"status" binding:"required,oneof=open closed"`
}

// BalanceResponse is the settled balance for an address
type BalanceResponse struct {
	Address     string `json:"address"`
	Satoshis    int64  `json:"satoshis"`
	Confirmed   int64  `json:"confirmed"`
	Unconfirmed int64  `json:"unconfirmed"`
}

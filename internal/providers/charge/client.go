package charge

import (
	"context"
	"fmt"

	"github.com/gratia-labs/patron-ledger/internal/adapter"
	"github.com/gratia-labs/patron-ledger/internal/domain"
)

const PROVIDER_NAME = "charge"

// chargeResponse is the charge record returned by the payment processor.
// Amounts are reported in cents
type chargeResponse struct {
	ID             string `json:"id"`
	Object         string `json:"object"`
	Refunded       bool   `json:"refunded"`
	AmountRefunded int64  `json:"amount_refunded"`
	Paid           bool   `json:"paid"`
	Status         string `json:"status"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
}

// Client defines the interface for charge retrieval to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/charge_client.go -package=mocks -mock_names=Client=MockChargeClient
type Client interface {
	// Retrieve fetches the immutable charge record for a transaction id
	Retrieve(ctx context.Context, transactionID string) (*domain.ChargeRecord, error)
}

// ChargeClient implements the charge provider HTTP client
type ChargeClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	secret     string
	json       adapter.JSON
}

// NewClient creates a new charge provider client
func NewClient(httpClient adapter.HTTPClient, apiURL string, secret string, json adapter.JSON) Client {
	return &ChargeClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		secret:     secret,
		json:       json,
	}
}

// Retrieve fetches the immutable charge record for a transaction id
func (c *ChargeClient) Retrieve(ctx context.Context, transactionID string) (*domain.ChargeRecord, error) {
	url := fmt.Sprintf("%s/v1/charges/%s", c.apiURL, transactionID)

	headers := map[string]string{
		"Authorization": "Bearer " + c.secret,
	}

	respBody, err := c.httpClient.GetBytes(ctx, url, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to call charge API: %w", err)
	}

	var response chargeResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal charge response: %w", err)
	}

	return &domain.ChargeRecord{
		Kind:           response.Object,
		Refunded:       response.Refunded,
		AmountRefunded: response.AmountRefunded,
		Paid:           response.Paid,
		Status:         response.Status,
		Amount:         float64(response.Amount) / 100,
		Currency:       response.Currency,
	}, nil
}

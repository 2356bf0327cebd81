package custodian

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gratia-labs/patron-ledger/internal/adapter"
	"github.com/gratia-labs/patron-ledger/internal/domain"
)

const PROVIDER_NAME = "custodian"

// submitRequest is the transaction submission body sent to the custodian
type submitRequest struct {
	Address  string `json:"address"`
	SignedTx string `json:"signedTx"`
}

// balancesResponse is the balance snapshot returned by the custodian
type balancesResponse struct {
	Confirmed   int64 `json:"confirmed"`
	Unconfirmed int64 `json:"unconfirmed"`
}

// Client defines the interface for custodian operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/custodian_client.go -package=mocks -mock_names=Client=MockCustodianClient
type Client interface {
	// SubmitTransaction submits a signed transaction for the wallet's
	// address and returns the custodian's verdict
	SubmitTransaction(ctx context.Context, address string, signedTx string) (*domain.PaymentVerdict, error)

	// Balances fetches the current confirmed/unconfirmed balances for an
	// address
	Balances(ctx context.Context, address string) (*domain.Balance, error)
}

// CustodianClient implements the custodian HTTP client
type CustodianClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	token      string
	json       adapter.JSON
}

// NewClient creates a new custodian client
func NewClient(httpClient adapter.HTTPClient, apiURL string, token string, json adapter.JSON) Client {
	return &CustodianClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		token:      token,
		json:       json,
	}
}

// SubmitTransaction submits a signed transaction for the wallet's address
// and returns the custodian's verdict
func (c *CustodianClient) SubmitTransaction(ctx context.Context, address string, signedTx string) (*domain.PaymentVerdict, error) {
	body, err := c.json.Marshal(submitRequest{Address: address, SignedTx: signedTx})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}

	url := fmt.Sprintf("%s/v1/transactions?access_token=%s", c.apiURL, c.token)

	respBody, err := c.httpClient.Post(ctx, url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to call custodian API: %w", err)
	}

	var verdict domain.PaymentVerdict
	if err := c.json.Unmarshal(respBody, &verdict); err != nil {
		return nil, fmt.Errorf("failed to unmarshal custodian response: %w", err)
	}

	return &verdict, nil
}

// Balances fetches the current confirmed/unconfirmed balances for an address
func (c *CustodianClient) Balances(ctx context.Context, address string) (*domain.Balance, error) {
	url := fmt.Sprintf("%s/v1/addresses/%s/balances", c.apiURL, address)

	headers := map[string]string{
		"Authorization": "Bearer " + c.token,
	}

	respBody, err := c.httpClient.GetBytes(ctx, url, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to call custodian API: %w", err)
	}

	var response balancesResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal balances response: %w", err)
	}

	return &domain.Balance{
		Confirmed:   response.Confirmed,
		Unconfirmed: response.Unconfirmed,
		Satoshis:    max(response.Confirmed, response.Unconfirmed),
	}, nil
}

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/gratia-labs/patron-ledger/internal/logger"
)

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// GetBytes performs a GET request with optional headers and returns the
	// response body
	GetBytes(ctx context.Context, url string, headers map[string]string) ([]byte, error)

	// Post performs a POST request and returns the response body
	Post(ctx context.Context, url string, contentType string, body io.Reader) ([]byte, error)
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// doRequestWithRetry executes an HTTP request with exponential backoff retry
// for rate limiting and transient network errors
func (c *RealHTTPClient) doRequestWithRetry(ctx context.Context, req *http.Request) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		resp, err := c.client.Do(req)
		if err != nil {
			// Network errors are retryable
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.Warn("failed to close response body", zap.Error(err), zap.String("url", req.URL.String()))
			}
		}()

		// Handle rate limiting - retry with backoff
		if resp.StatusCode == http.StatusTooManyRequests {
			logger.Warn("rate limited, retrying with backoff", zap.String("url", req.URL.String()))
			return fmt.Errorf("rate limited (429), retrying")
		}

		// Other non-OK status codes are permanent errors
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body)))
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 1 * time.Minute
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}

	return respBody, nil
}

// GetBytes performs a GET request with optional headers and returns the
// response body
func (c *RealHTTPClient) GetBytes(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return c.doRequestWithRetry(ctx, req)
}

// Post performs a POST request and returns the response body
func (c *RealHTTPClient) Post(ctx context.Context, url string, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return c.doRequestWithRetry(ctx, req)
}

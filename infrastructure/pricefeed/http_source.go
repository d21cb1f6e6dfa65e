// Package pricefeed fetches raw JSON documents from third-party price
// APIs.
package pricefeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"theta-oracle-keeper/domain/errors"
	"theta-oracle-keeper/domain/interfaces"
)

// fetchTimeout bounds one API fetch.
const fetchTimeout = 15 * time.Second

// maxResponseBytes caps how much of a response body is read. Price API
// responses are small; anything bigger is misconfiguration.
const maxResponseBytes = 1 << 20

// httpSource implements the PriceSource interface with plain
// unauthenticated GET requests.
type httpSource struct {
	logger     interfaces.Logger
	httpClient *http.Client
}

// NewHTTPSource creates a price source.
func NewHTTPSource(logger interfaces.Logger) interfaces.PriceSource {
	return &httpSource{
		logger: logger,
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// Fetch performs a GET against the endpoint and returns the body.
// Non-2xx responses and transport errors are ExternalServiceErrors.
func (s *httpSource) Fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &errors.ExternalServiceError{
			Service:   "price-api",
			Operation: "Fetch",
			Err:       err,
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &errors.ExternalServiceError{
			Service:   "price-api",
			Operation: "Fetch",
			Err:       err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &errors.ExternalServiceError{
			Service:   "price-api",
			Operation: "Fetch",
			Err:       fmt.Errorf("endpoint returned status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &errors.ExternalServiceError{
			Service:   "price-api",
			Operation: "Fetch",
			Err:       err,
		}
	}

	s.logger.Debug("Fetched price API", "endpoint", endpoint, "bytes", len(body))
	return body, nil
}

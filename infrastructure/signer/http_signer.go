// Package signer provides the HTTP client for the remote custodial
// signing service. Key material never leaves the service; the keeper
// only ever sends 32-byte hashes and receives recoverable signatures.
package signer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"theta-oracle-keeper/domain/entities"
	"theta-oracle-keeper/domain/errors"
	"theta-oracle-keeper/domain/interfaces"

	"github.com/ethereum/go-ethereum/common"
)

// signTimeout bounds the remote signing call. The service performs a
// threshold-signing round internally and can take a while, but never
// legitimately longer than this.
const signTimeout = 30 * time.Second

// httpSigner implements the SignerService interface against the
// signing service's JSON API.
type httpSigner struct {
	baseURL    string
	accountID  string
	logger     interfaces.Logger
	httpClient *http.Client
}

// NewHTTPSigner creates a signer client for the given service URL and
// service account identity.
func NewHTTPSigner(baseURL, accountID string, logger interfaces.Logger) interfaces.SignerService {
	return &httpSigner{
		baseURL:   strings.TrimRight(baseURL, "/"),
		accountID: accountID,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: signTimeout,
		},
	}
}

type signRequest struct {
	AccountID string `json:"accountId"`
	Path      string `json:"path"`
	Payload   string `json:"payload"`
}

type signResponse struct {
	R string `json:"r"`
	S string `json:"s"`
	V uint8  `json:"v"`
}

type deriveRequest struct {
	AccountID string `json:"accountId"`
	Path      string `json:"path"`
}

type deriveResponse struct {
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`
}

// Sign sends a 32-byte hash to the signing service and returns the
// recoverable signature.
func (s *httpSigner) Sign(ctx context.Context, derivationPath string, hash common.Hash) (*entities.Signature, error) {
	var resp signResponse
	err := s.post(ctx, "/api/sign", signRequest{
		AccountID: s.accountID,
		Path:      derivationPath,
		Payload:   hash.Hex(),
	}, &resp)
	if err != nil {
		return nil, &errors.ExternalServiceError{
			Service:   "signer",
			Operation: "Sign",
			Err:       err,
		}
	}

	r, err := parseHexInt(resp.R)
	if err != nil {
		return nil, &errors.ExternalServiceError{
			Service:   "signer",
			Operation: "Sign",
			Err:       fmt.Errorf("bad r component: %w", err),
		}
	}
	sComp, err := parseHexInt(resp.S)
	if err != nil {
		return nil, &errors.ExternalServiceError{
			Service:   "signer",
			Operation: "Sign",
			Err:       fmt.Errorf("bad s component: %w", err),
		}
	}

	return &entities.Signature{R: r, S: sComp, V: resp.V}, nil
}

// DeriveAddress asks the signing service for the EVM address derived
// from the service account identity plus the derivation path. The
// service's derivation is deterministic: same inputs, same address.
func (s *httpSigner) DeriveAddress(ctx context.Context, derivationPath string) (common.Address, error) {
	var resp deriveResponse
	err := s.post(ctx, "/api/address", deriveRequest{
		AccountID: s.accountID,
		Path:      derivationPath,
	}, &resp)
	if err != nil {
		return common.Address{}, &errors.ExternalServiceError{
			Service:   "signer",
			Operation: "DeriveAddress",
			Err:       err,
		}
	}

	if !common.IsHexAddress(resp.Address) {
		return common.Address{}, &errors.ExternalServiceError{
			Service:   "signer",
			Operation: "DeriveAddress",
			Err:       fmt.Errorf("service returned malformed address %q", resp.Address),
		}
	}
	return common.HexToAddress(resp.Address), nil
}

// post performs one JSON request/response round trip.
func (s *httpSigner) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("signer returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// parseHexInt parses a 0x-prefixed or bare hex big integer. Signature
// components come back as fixed-width hex, so leading zeros are legal.
func parseHexInt(s string) (*big.Int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, fmt.Errorf("empty hex value")
	}
	value, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("malformed hex value %q", s)
	}
	return value, nil
}

package interfaces

import (
	"context"

	"theta-oracle-keeper/domain/entities"

	"github.com/ethereum/go-ethereum/common"
)

// SignerService is the remote custodial signing service. Key material
// never leaves the service: callers send a 32-byte hash and receive a
// recoverable signature, keyed by the service account identity plus a
// derivation path.
type SignerService interface {
	// Sign signs a 32-byte hash with the key derived from the given
	// derivation path and returns the signature in (r, s, v) form.
	Sign(ctx context.Context, derivationPath string, hash common.Hash) (*entities.Signature, error)

	// DeriveAddress returns the EVM address derived from the service
	// account identity and derivation path. Same inputs always yield
	// the same address.
	DeriveAddress(ctx context.Context, derivationPath string) (common.Address, error)
}

// PriceSource fetches raw JSON documents from third-party price APIs.
type PriceSource interface {
	// Fetch performs a plain GET against the endpoint and returns the
	// response body. Non-2xx responses are errors.
	Fetch(ctx context.Context, endpoint string) ([]byte, error)
}

// Package entities contains the core domain entities for the oracle keeper.
// It defines structures for oracle configurations, on-chain state, and
// update outcomes.
package entities

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// OracleIDPattern is the validation pattern for oracle identifiers.
const OracleIDPattern = `^[a-z0-9-_]{3,50}$`

// DefaultPriceMultiplier is applied to legacy configs that predate the
// priceMultiplier field.
const DefaultPriceMultiplier = 100

// DefaultUpdateIntervalMinutes is applied to legacy configs that predate
// the updateIntervalMinutes field.
const DefaultUpdateIntervalMinutes = 60

// OracleConfig represents one registered oracle: its data source, update
// cadence, derived wallet, and last-known update status.
type OracleConfig struct {
	ID                    string         `json:"id" validate:"required,oracle_id"`
	Description           string         `json:"description" validate:"max=200"`
	APIEndpoint           string         `json:"apiEndpoint" validate:"required,url"`
	DataPath              string         `json:"dataPath" validate:"required"`
	UpdateIntervalMinutes int            `json:"updateIntervalMinutes" validate:"min=1,max=10080"`
	DerivationPath        string         `json:"derivationPath"`
	Address               common.Address `json:"address"`
	PriceMultiplier       int64          `json:"priceMultiplier" validate:"min=1"`
	IsActive              bool           `json:"isActive"`

	LastUpdate  *time.Time `json:"lastUpdate,omitempty"`
	LastErrorAt *time.Time `json:"lastErrorAt,omitempty"`
	HasError    bool       `json:"hasError"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	LastTxHash  string     `json:"lastTxHash,omitempty"`
	LastValue   string     `json:"lastValue,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NextUpdateAt returns the time the oracle next becomes due. An oracle
// that has never been updated is due immediately.
func (c *OracleConfig) NextUpdateAt(now time.Time) time.Time {
	if c.LastUpdate == nil {
		return now
	}
	return c.LastUpdate.Add(time.Duration(c.UpdateIntervalMinutes) * time.Minute)
}

// IsDue reports whether the oracle is due for an update at the given time.
func (c *OracleConfig) IsDue(now time.Time) bool {
	return !now.Before(c.NextUpdateAt(now))
}

// OracleConfigPatch is a partial update to an OracleConfig. Nil fields
// are left untouched by ConfigStore.Update.
type OracleConfigPatch struct {
	Description           *string
	APIEndpoint           *string
	DataPath              *string
	UpdateIntervalMinutes *int
	PriceMultiplier       *int64
	Address               *common.Address
	IsActive              *bool

	LastUpdate   *time.Time
	LastErrorAt  *time.Time
	HasError     *bool
	ErrorMessage *string
	LastTxHash   *string
	LastValue    *string
}

// OracleOnChainState is the contract-side record for one oracle id.
type OracleOnChainState struct {
	Value           *big.Int
	LastUpdateBlock uint64
	Creator         common.Address
	HasError        bool
	Description     string
}

// Exists reports whether the oracle has been deployed on-chain. The
// contract returns the zero address as creator for unknown ids.
func (s *OracleOnChainState) Exists() bool {
	return s != nil && s.Creator != (common.Address{})
}

// WalletInfo pairs a derived oracle wallet address with the derivation
// path that produced it.
type WalletInfo struct {
	OracleID       string
	DerivationPath string
	Address        common.Address
}

// Signature is a recoverable ECDSA signature as returned by the remote
// signing service. V is the recovery id (0 or 1).
type Signature struct {
	R *big.Int
	S *big.Int
	V byte
}

// UpdateOutcome is the result of one oracle update attempt.
type UpdateOutcome struct {
	AttemptID  uuid.UUID
	OracleID   string
	Skipped    bool
	SkipReason string
	OldValue   *big.Int
	NewValue   *big.Int
	TxHash     common.Hash
}

// SchedulerStatus describes the scheduler's current state.
type SchedulerStatus struct {
	Running             bool
	CurrentlyUpdating   []string
	LastTickAt          *time.Time
}

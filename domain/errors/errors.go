package errors

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Domain errors
var (
	// ErrNotFound is returned when a requested oracle or config is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrTimeout is returned when an operation times out
	ErrTimeout = errors.New("operation timed out")

	// ErrConnection is returned when a connection error occurs
	ErrConnection = errors.New("connection error")

	// ErrUnauthorized is returned when an operation is not authorized
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")

	// ErrOracleNotDeployed is returned when the contract has no record
	// for the requested oracle id
	ErrOracleNotDeployed = errors.New("oracle not deployed on-chain")

	// ErrUpdateInProgress is returned when an update for the same oracle
	// id is already in flight
	ErrUpdateInProgress = errors.New("update already in progress")
)

// Extraction errors returned by the path extractor.
var (
	// ErrPathNotFound is returned when a path segment is absent or an
	// intermediate value is not an object
	ErrPathNotFound = errors.New("path not found in document")

	// ErrNotNumeric is returned when a terminal string value does not
	// parse to a finite number
	ErrNotNumeric = errors.New("value is not numeric")

	// ErrWrongType is returned when a terminal value is neither a number
	// nor a numeric string
	ErrWrongType = errors.New("value has wrong type")
)

// DomainError represents a domain-specific error with context
type DomainError struct {
	Type    error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return e.Type.Error()
}

// Is implements errors.Is interface
func (e *DomainError) Is(target error) bool {
	return errors.Is(e.Type, target)
}

// Unwrap implements errors.Unwrap interface
func (e *DomainError) Unwrap() error {
	return e.Type
}

// NewDomainError creates a new domain error
func NewDomainError(errType error, message string) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// WithDetails adds details to the domain error
func (e *DomainError) WithDetails(key string, value interface{}) *DomainError {
	e.Details[key] = value
	return e
}

// ValidationError represents a validation error with field-specific errors
type ValidationError struct {
	Fields map[string][]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d fields", len(e.Fields))
}

// AddFieldError adds a field-specific error
func (e *ValidationError) AddFieldError(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors returns true if there are any field errors
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// ExtractionError describes a failed value extraction from an API
// response document.
type ExtractionError struct {
	Path   string
	Reason error
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed at path %q: %v", e.Path, e.Reason)
}

// Unwrap implements errors.Unwrap interface
func (e *ExtractionError) Unwrap() error {
	return e.Reason
}

// BlockchainError represents a blockchain-specific error
type BlockchainError struct {
	Operation string
	ChainID   int64
	Err       error
}

// Error implements the error interface
func (e *BlockchainError) Error() string {
	return fmt.Sprintf("blockchain error during %s on chain %d: %v",
		e.Operation, e.ChainID, e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *BlockchainError) Unwrap() error {
	return e.Err
}

// RepositoryError represents a config-store-specific error
type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository error during %s on %s: %v",
		e.Operation, e.Entity, e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// ExternalServiceError represents a transport failure against a remote
// collaborator (price API, RPC node, signing service). These are
// retryable by the next scheduler tick, never within the same attempt.
type ExternalServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error implements the error interface
func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s error during %s: %v", e.Service, e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// NotCreatorError is returned when the deriving wallet does not match
// the on-chain creator of the oracle. This requires operator
// intervention; it is never retried.
type NotCreatorError struct {
	OracleID string
	Sender   common.Address
	Creator  common.Address
}

// Error implements the error interface
func (e *NotCreatorError) Error() string {
	return fmt.Sprintf("wallet %s is not the creator of oracle %q (creator is %s)",
		e.Sender.Hex(), e.OracleID, e.Creator.Hex())
}

// Is implements errors.Is interface
func (e *NotCreatorError) Is(target error) bool {
	return target == ErrUnauthorized
}

// InsufficientFundsError is returned when the oracle wallet balance is
// below the minimum gas reserve. Shortfall is always >= 0 and is
// expressed in wei.
type InsufficientFundsError struct {
	OracleID  string
	Address   common.Address
	Required  *big.Int
	Available *big.Int
	Shortfall *big.Int
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("oracle %q wallet %s needs %s wei but holds %s wei (shortfall %s wei)",
		e.OracleID, e.Address.Hex(), e.Required, e.Available, e.Shortfall)
}

// NewInsufficientFundsError builds the error, computing the shortfall
// from required and available.
func NewInsufficientFundsError(oracleID string, addr common.Address, required, available *big.Int) *InsufficientFundsError {
	shortfall := new(big.Int).Sub(required, available)
	if shortfall.Sign() < 0 {
		shortfall.SetInt64(0)
	}
	return &InsufficientFundsError{
		OracleID:  oracleID,
		Address:   addr,
		Required:  new(big.Int).Set(required),
		Available: new(big.Int).Set(available),
		Shortfall: shortfall,
	}
}

// nonceConflictMarkers are substrings of broadcast failures that
// indicate the transaction raced an already-pending one rather than
// failing outright.
var nonceConflictMarkers = []string{
	"nonce too low",
	"already known",
	"replacement transaction underpriced",
}

// IsNonceConflict reports whether a broadcast failure looks like a
// nonce race with an already-pending transaction. Such failures are
// informational: the value was most likely already submitted.
func IsNonceConflict(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range nonceConflictMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

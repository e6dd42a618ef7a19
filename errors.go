package connector

import (
	"errors"
	"fmt"

	"github.com/smartcontractkit/connector/types"
)

var errLoaderRequired = errors.New("wallet loader is required")

// reasonConnectionRejected is the rejection reason used when the wallet declines without saying why.
const reasonConnectionRejected = "wallet connection rejected"

// UserRejectedRequestError is returned when the user declines a wallet request.
type UserRejectedRequestError struct {
	Reason string
}

// NewUserRejectedRequestError creates a new UserRejectedRequestError.
func NewUserRejectedRequestError(reason string) *UserRejectedRequestError {
	return &UserRejectedRequestError{Reason: reason}
}

func (e *UserRejectedRequestError) Error() string {
	return "user rejected the request: " + e.Reason
}

// ConnectionError is returned when a wallet connection fails for a reason other than the user
// declining it.
type ConnectionError struct {
	Err error
}

// NewConnectionError creates a new ConnectionError.
func NewConnectionError(err error) *ConnectionError {
	return &ConnectionError{Err: err}
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect wallet: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ProviderNotFoundError is returned when no provider can be obtained from the wallet.
type ProviderNotFoundError struct {
	ChainID types.ChainID
	Err     error
}

// NewProviderNotFoundError creates a new ProviderNotFoundError.
func NewProviderNotFoundError(chainID types.ChainID, err error) *ProviderNotFoundError {
	return &ProviderNotFoundError{ChainID: chainID, Err: err}
}

func (e *ProviderNotFoundError) Error() string {
	return fmt.Sprintf("provider not found for chain %d: %v", e.ChainID, e.Err)
}

func (e *ProviderNotFoundError) Unwrap() error {
	return e.Err
}

// UnsupportedChainError is returned when switching to a chain the wallet does not support.
type UnsupportedChainError struct {
	ChainID types.ChainID
}

// NewUnsupportedChainError creates a new UnsupportedChainError.
func NewUnsupportedChainError(chainID types.ChainID) *UnsupportedChainError {
	return &UnsupportedChainError{ChainID: chainID}
}

func (e *UnsupportedChainError) Error() string {
	return fmt.Sprintf("chain %d is not supported by the wallet", e.ChainID)
}

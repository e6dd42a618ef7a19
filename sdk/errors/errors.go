package sdkerrors

import (
	"errors"
	"fmt"

	"github.com/smartcontractkit/connector/types"
)

// ErrWalletNotInitialized is returned by a WalletLoader when no wallet handle exists yet.
var ErrWalletNotInitialized = errors.New("wallet not initialized")

// ErrWalletNotConnected is returned for operations that need an open wallet session.
var ErrWalletNotConnected = errors.New("wallet not connected")

// ChainNotInitializedError is returned when the wallet cannot produce a provider or signer for a
// chain it was not configured with.
type ChainNotInitializedError struct {
	ChainID types.ChainID
}

func (e *ChainNotInitializedError) Error() string {
	return fmt.Sprintf("chain %d is not initialized in the wallet", e.ChainID)
}

func NewChainNotInitializedError(chainID types.ChainID) *ChainNotInitializedError {
	return &ChainNotInitializedError{ChainID: chainID}
}

// InvalidChainIDError is returned when a chain id differs from the expected one: an endpoint
// serving another chain, or a transaction or typed data payload for another chain.
type InvalidChainIDError struct {
	ExpectedChainID types.ChainID
	ReceivedChainID types.ChainID
}

func (e *InvalidChainIDError) Error() string {
	return fmt.Sprintf("invalid chain ID: expected %v, received %v", e.ExpectedChainID, e.ReceivedChainID)
}

func NewInvalidChainIDError(expected, received types.ChainID) *InvalidChainIDError {
	return &InvalidChainIDError{ExpectedChainID: expected, ReceivedChainID: received}
}

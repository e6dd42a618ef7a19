package proxy

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/smartcontractkit/connector/chainstate"
	"github.com/smartcontractkit/connector/sdk"
	"github.com/smartcontractkit/connector/types"
)

var _ sdk.Signer = (*ChainScopedSigner)(nil)

// ChainScopedSigner forwards every call to the wallet's signer for the active chain.
type ChainScopedSigner struct {
	scoped *chainScoped[sdk.Signer]
}

// NewChainScopedSigner creates the signer proxy. The first delegate is minted on first use.
func NewChainScopedSigner(wallet sdk.Wallet, shared *chainstate.SharedChainID) *ChainScopedSigner {
	return &ChainScopedSigner{
		scoped: &chainScoped[sdk.Signer]{
			wallet: wallet,
			shared: shared,
			mint:   wallet.Signer,
		},
	}
}

// ChainID returns the active chain, which the next call binds to.
func (s *ChainScopedSigner) ChainID() types.ChainID {
	return s.scoped.current()
}

// Resolve returns the wallet signer for the active chain.
func (s *ChainScopedSigner) Resolve(ctx context.Context) (sdk.Signer, error) {
	return s.scoped.resolve(ctx)
}

func (s *ChainScopedSigner) Address(ctx context.Context) (common.Address, error) {
	delegate, err := s.scoped.resolve(ctx)
	if err != nil {
		return common.Address{}, err
	}

	return delegate.Address(ctx)
}

func (s *ChainScopedSigner) SignMessage(ctx context.Context, message []byte) ([]byte, error) {
	delegate, err := s.scoped.resolve(ctx)
	if err != nil {
		return nil, err
	}

	return delegate.SignMessage(ctx, message)
}

func (s *ChainScopedSigner) SignTransaction(ctx context.Context, tx *gethtypes.Transaction) (*gethtypes.Transaction, error) {
	delegate, err := s.scoped.resolve(ctx)
	if err != nil {
		return nil, err
	}

	return delegate.SignTransaction(ctx, tx)
}

func (s *ChainScopedSigner) SignTypedData(ctx context.Context, data apitypes.TypedData) ([]byte, error) {
	delegate, err := s.scoped.resolve(ctx)
	if err != nil {
		return nil, err
	}

	return delegate.SignTypedData(ctx, data)
}

// Connect binds the active chain's signer to another provider.
func (s *ChainScopedSigner) Connect(provider sdk.Provider) (sdk.Signer, error) {
	delegate, err := s.scoped.resolve(context.Background())
	if err != nil {
		return nil, err
	}

	return delegate.Connect(provider)
}

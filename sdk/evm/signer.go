package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/smartcontractkit/connector/sdk"
	sdkerrors "github.com/smartcontractkit/connector/sdk/errors"
	"github.com/smartcontractkit/connector/types"
)

var _ sdk.Signer = (*Signer)(nil)

// Signer signs on behalf of the wallet account for one chain. All operations require an open
// wallet session.
type Signer struct {
	wallet  *Wallet
	chainID types.ChainID
}

func (s *Signer) ChainID() types.ChainID {
	return s.chainID
}

func (s *Signer) Address(context.Context) (common.Address, error) {
	if !s.wallet.IsConnected() {
		return common.Address{}, sdkerrors.ErrWalletNotConnected
	}

	return s.wallet.Address(), nil
}

// SignMessage signs message with the EIP-191 personal message prefix.
func (s *Signer) SignMessage(_ context.Context, message []byte) ([]byte, error) {
	if !s.wallet.IsConnected() {
		return nil, sdkerrors.ErrWalletNotConnected
	}

	return s.sign(accounts.TextHash(message))
}

// SignTransaction signs tx for the signer's chain with the latest signer scheme.
func (s *Signer) SignTransaction(_ context.Context, tx *gethtypes.Transaction) (*gethtypes.Transaction, error) {
	if !s.wallet.IsConnected() {
		return nil, sdkerrors.ErrWalletNotConnected
	}

	if tx.Type() != gethtypes.LegacyTxType && tx.ChainId().Cmp(s.chainID.Big()) != 0 {
		return nil, sdkerrors.NewInvalidChainIDError(s.chainID, types.ChainID(tx.ChainId().Uint64()))
	}

	return gethtypes.SignTx(tx, gethtypes.LatestSignerForChainID(s.chainID.Big()), s.wallet.key)
}

// SignTypedData signs EIP-712 typed data. A domain chain id, when present, must match the
// signer's chain.
func (s *Signer) SignTypedData(_ context.Context, data apitypes.TypedData) ([]byte, error) {
	if !s.wallet.IsConnected() {
		return nil, sdkerrors.ErrWalletNotConnected
	}

	if data.Domain.ChainId != nil {
		domainChainID, err := types.NormalizeChainID((*big.Int)(data.Domain.ChainId))
		if err != nil {
			return nil, err
		}
		if domainChainID != s.chainID {
			return nil, sdkerrors.NewInvalidChainIDError(s.chainID, domainChainID)
		}
	}

	hash, _, err := apitypes.TypedDataAndHash(data)
	if err != nil {
		return nil, fmt.Errorf("failed to hash typed data: %w", err)
	}

	return s.sign(hash)
}

// Connect returns a signer for the same account on the provider's chain.
func (s *Signer) Connect(provider sdk.Provider) (sdk.Signer, error) {
	return s.wallet.Signer(context.Background(), provider.ChainID())
}

func (s *Signer) sign(hash []byte) ([]byte, error) {
	sig, err := crypto.Sign(hash, s.wallet.key)
	if err != nil {
		return nil, err
	}
	sig[crypto.RecoveryIDOffset] += types.SignatureVOffset

	return sig, nil
}

package evm

import (
	"context"
	"crypto/ecdsa"
	"maps"
	"slices"
	"sync"

	"github.com/smartcontractkit/connector/sdk"
	sdkerrors "github.com/smartcontractkit/connector/sdk/errors"
	"github.com/smartcontractkit/connector/types"
)

var _ sdk.WalletLoader = (*Loader)(nil)

// Loader holds the process's single Wallet. The first InitWallet call creates it; later calls
// return the same handle.
type Loader struct {
	key     *ecdsa.PrivateKey
	rpcURLs map[types.ChainID]string
	opts    []WalletOption

	mu               sync.Mutex
	wallet           *Wallet
	projectAccessKey string
}

// NewLoader creates a Loader that will build its wallet from key and rpcURLs.
func NewLoader(key *ecdsa.PrivateKey, rpcURLs map[types.ChainID]string, opts ...WalletOption) *Loader {
	return &Loader{key: key, rpcURLs: rpcURLs, opts: opts}
}

// GetWallet returns the wallet or sdkerrors.ErrWalletNotInitialized.
func (l *Loader) GetWallet() (sdk.Wallet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.wallet == nil {
		return nil, sdkerrors.ErrWalletNotInitialized
	}

	return l.wallet, nil
}

// InitWallet creates the wallet on first use. When opts.DefaultNetwork is zero the lowest
// configured chain id becomes the default.
func (l *Loader) InitWallet(ctx context.Context, projectAccessKey string, opts sdk.InitOptions) (sdk.Wallet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.wallet != nil {
		return l.wallet, nil
	}

	defaultChainID := opts.DefaultNetwork
	if defaultChainID == 0 && len(l.rpcURLs) > 0 {
		defaultChainID = slices.Min(slices.Collect(maps.Keys(l.rpcURLs)))
	}

	wallet, err := NewWallet(l.key, WalletConfig{
		DefaultChainID: defaultChainID,
		RPCURLs:        l.rpcURLs,
		WalletAppURL:   opts.WalletAppURL,
	}, l.opts...)
	if err != nil {
		return nil, err
	}

	sdk.LoggerFrom(ctx).Infof("Initialized wallet %s on chain %s with %d networks",
		wallet.Address().Hex(), defaultChainID, len(l.rpcURLs))

	l.wallet = wallet
	l.projectAccessKey = projectAccessKey

	return wallet, nil
}

// ProjectAccessKey returns the access key the wallet was initialized with.
func (l *Loader) ProjectAccessKey() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.projectAccessKey
}

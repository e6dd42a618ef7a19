package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/go-playground/validator/v10"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/errgroup"

	"github.com/smartcontractkit/connector/internal/eventhub"
	"github.com/smartcontractkit/connector/sdk"
	sdkerrors "github.com/smartcontractkit/connector/sdk/errors"
	"github.com/smartcontractkit/connector/types"
)

var _ sdk.Wallet = (*Wallet)(nil)

var errPrivateKeyRequired = errors.New("private key is required")

// defaultClientCacheSize bounds the number of RPC connections kept open at once.
const defaultClientCacheSize = 8

// RPCClient is the part of go-ethereum's rpc.Client used by providers.
type RPCClient interface {
	CallContext(ctx context.Context, result any, method string, args ...any) error
	Close()
}

// Dialer opens an RPC connection to an endpoint.
type Dialer func(ctx context.Context, rawURL string) (RPCClient, error)

// DialRPC dials rawURL with go-ethereum's rpc package.
func DialRPC(ctx context.Context, rawURL string) (RPCClient, error) {
	client, err := rpc.DialContext(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// Approver decides whether a connect request is accepted. It stands in for the user's answer to
// the wallet's connect prompt: false means the user declined, an error means the prompt failed.
type Approver func(ctx context.Context, opts sdk.ConnectOptions) (bool, error)

// AutoApprove accepts every connect request.
func AutoApprove(context.Context, sdk.ConnectOptions) (bool, error) {
	return true, nil
}

// WalletConfig configures a Wallet.
type WalletConfig struct {
	// DefaultChainID is the chain active before any switch. It must have an RPC URL.
	DefaultChainID types.ChainID `validate:"required"`

	// RPCURLs maps every supported chain to its JSON-RPC endpoint.
	RPCURLs map[types.ChainID]string `validate:"required,min=1,dive,required,url"`

	// WalletAppURL is recorded for display; the local wallet has no web UI.
	WalletAppURL string `validate:"omitempty,url"`

	// ClientCacheSize bounds open RPC connections. Zero uses the default.
	ClientCacheSize int `validate:"gte=0"`
}

// WalletOption configures a Wallet.
type WalletOption func(*Wallet)

// WithDialer replaces the RPC dialer.
func WithDialer(dial Dialer) WalletOption {
	return func(w *Wallet) {
		w.dial = dial
	}
}

// WithApprover replaces the connect approval hook.
func WithApprover(approve Approver) WalletOption {
	return func(w *Wallet) {
		w.approve = approve
	}
}

// Wallet is a single-account wallet backed by a private key and one JSON-RPC endpoint per chain.
type Wallet struct {
	cfg     WalletConfig
	key     *ecdsa.PrivateKey
	dial    Dialer
	approve Approver

	dialMu  sync.Mutex
	clients *lru.Cache

	mu        sync.RWMutex
	connected bool
	chainID   types.ChainID

	accountsChanged eventhub.Handlers[[]common.Address]
	chainChanged    eventhub.Handlers[types.ChainID]
	connects        eventhub.Handlers[types.ConnectInfo]
	disconnects     eventhub.Handlers[error]
}

// NewWallet creates a disconnected wallet on cfg.DefaultChainID.
func NewWallet(key *ecdsa.PrivateKey, cfg WalletConfig, opts ...WalletOption) (*Wallet, error) {
	if key == nil {
		return nil, errPrivateKeyRequired
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid wallet config: %w", err)
	}

	if _, ok := cfg.RPCURLs[cfg.DefaultChainID]; !ok {
		return nil, sdkerrors.NewChainNotInitializedError(cfg.DefaultChainID)
	}

	size := cfg.ClientCacheSize
	if size == 0 {
		size = defaultClientCacheSize
	}

	clients, err := lru.NewWithEvict(size, func(_ any, value any) {
		if lc, ok := value.(*leasedClient); ok {
			lc.evict()
		}
	})
	if err != nil {
		return nil, err
	}

	w := &Wallet{
		cfg:     cfg,
		key:     key,
		dial:    DialRPC,
		approve: AutoApprove,
		clients: clients,
		chainID: cfg.DefaultChainID,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Address returns the wallet account.
func (w *Wallet) Address() common.Address {
	return crypto.PubkeyToAddress(w.key.PublicKey)
}

func (w *Wallet) IsConnected() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.connected
}

// Connect asks the approver for a session. A declined prompt is reported in the result, not as
// an error.
func (w *Wallet) Connect(ctx context.Context, opts sdk.ConnectOptions) (sdk.ConnectResult, error) {
	if err := validator.New().Struct(opts); err != nil {
		return sdk.ConnectResult{}, fmt.Errorf("invalid connect options: %w", err)
	}

	approved, err := w.approve(ctx, opts)
	if err != nil {
		return sdk.ConnectResult{Error: err.Error()}, nil
	}
	if !approved {
		return sdk.ConnectResult{Connected: false}, nil
	}

	w.mu.Lock()
	w.connected = true
	info := types.ConnectInfo{ChainID: w.chainID, Accounts: []common.Address{w.Address()}}
	w.mu.Unlock()

	sdk.LoggerFrom(ctx).Infof("Wallet session opened for app %q on chain %s", opts.App, info.ChainID)

	w.connects.Emit(info)
	w.accountsChanged.Emit(info.Accounts)

	return sdk.ConnectResult{Connected: true, Session: &info}, nil
}

// Disconnect closes the session and all open RPC connections.
func (w *Wallet) Disconnect(ctx context.Context) error {
	w.mu.Lock()
	wasConnected := w.connected
	w.connected = false
	w.mu.Unlock()

	w.dialMu.Lock()
	w.clients.Purge()
	w.dialMu.Unlock()

	if wasConnected {
		sdk.LoggerFrom(ctx).Infof("Wallet session closed")
		w.disconnects.Emit(nil)
	}

	return nil
}

func (w *Wallet) ChainID() types.ChainID {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.chainID
}

// SetDefaultChainID changes the wallet's active chain and notifies chainChanged listeners when
// the chain actually changes.
func (w *Wallet) SetDefaultChainID(_ context.Context, chainID types.ChainID) error {
	if _, ok := w.cfg.RPCURLs[chainID]; !ok {
		return sdkerrors.NewChainNotInitializedError(chainID)
	}

	w.mu.Lock()
	changed := w.chainID != chainID
	w.chainID = chainID
	w.mu.Unlock()

	if changed {
		w.chainChanged.Emit(chainID)
	}

	return nil
}

// Networks returns the configured chains in ascending chain id order.
func (w *Wallet) Networks(context.Context) ([]types.Network, error) {
	ids := slices.Sorted(maps.Keys(w.cfg.RPCURLs))

	networks := make([]types.Network, 0, len(ids))
	for _, id := range ids {
		networks = append(networks, types.Network{ChainID: id, Name: types.ChainName(id)})
	}

	return networks, nil
}

// Provider returns a new provider for chainID. The RPC connection is opened on first request.
func (w *Wallet) Provider(_ context.Context, chainID types.ChainID) (sdk.Provider, error) {
	if _, ok := w.cfg.RPCURLs[chainID]; !ok {
		return nil, sdkerrors.NewChainNotInitializedError(chainID)
	}

	return &Provider{wallet: w, chainID: chainID}, nil
}

// Signer returns a new signer for chainID.
func (w *Wallet) Signer(_ context.Context, chainID types.ChainID) (sdk.Signer, error) {
	if _, ok := w.cfg.RPCURLs[chainID]; !ok {
		return nil, sdkerrors.NewChainNotInitializedError(chainID)
	}

	return &Signer{wallet: w, chainID: chainID}, nil
}

// CheckNetworks queries eth_chainId on every configured endpoint concurrently and fails if any
// endpoint is unreachable or serves a different chain.
func (w *Wallet) CheckNetworks(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for id := range w.cfg.RPCURLs {
		g.Go(func() error {
			client, release, err := w.client(gctx, id)
			if err != nil {
				return fmt.Errorf("failed to dial chain %s: %w", id, err)
			}
			defer release()

			var got hexutil.Uint64
			if err := client.CallContext(gctx, &got, "eth_chainId"); err != nil {
				return fmt.Errorf("failed to query chain id of chain %s: %w", id, err)
			}

			if types.ChainID(got) != id {
				return sdkerrors.NewInvalidChainIDError(id, types.ChainID(got))
			}

			return nil
		})
	}

	return g.Wait()
}

// client leases the cached RPC connection for chainID, dialing it if needed. The caller must
// call release once done with the client.
func (w *Wallet) client(ctx context.Context, chainID types.ChainID) (RPCClient, func(), error) {
	w.dialMu.Lock()
	defer w.dialMu.Unlock()

	if cached, ok := w.clients.Get(chainID); ok {
		lc := cached.(*leasedClient)
		return lc.client, w.lease(lc), nil
	}

	url, ok := w.cfg.RPCURLs[chainID]
	if !ok {
		return nil, nil, sdkerrors.NewChainNotInitializedError(chainID)
	}

	client, err := w.dial(ctx, url)
	if err != nil {
		return nil, nil, err
	}

	lc := &leasedClient{client: client}
	release := w.lease(lc)
	w.clients.Add(chainID, lc)

	return client, release, nil
}

// lease takes a reference on lc. Must be called with dialMu held.
func (w *Wallet) lease(lc *leasedClient) func() {
	lc.refs++

	var once sync.Once
	return func() {
		once.Do(func() {
			w.dialMu.Lock()
			defer w.dialMu.Unlock()

			lc.refs--
			if lc.refs == 0 && lc.evicted {
				lc.client.Close()
			}
		})
	}
}

// leasedClient is a cached connection that is closed once it has been evicted and no request
// holds it. Its fields are guarded by Wallet.dialMu.
type leasedClient struct {
	client  RPCClient
	refs    int
	evicted bool
}

func (lc *leasedClient) evict() {
	lc.evicted = true
	if lc.refs == 0 {
		lc.client.Close()
	}
}

package connector

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/smartcontractkit/connector/chainstate"
	"github.com/smartcontractkit/connector/sdk"
	sdkerrors "github.com/smartcontractkit/connector/sdk/errors"
	"github.com/smartcontractkit/connector/sdk/proxy"
	"github.com/smartcontractkit/connector/types"
)

// Identity reported to the host framework.
const (
	ID   = "sequence"
	Name = "Sequence"
	Type = "sequence"
)

// Option configures a Connector.
type Option func(*Connector)

// WithSharedChainID makes the connector use shared as its active chain cell. Connectors sharing a
// wallet must share the cell.
func WithSharedChainID(shared *chainstate.SharedChainID) Option {
	return func(c *Connector) {
		c.shared = shared
	}
}

// WithEmitter sets the host notification sink.
func WithEmitter(emitter Emitter) Option {
	return func(c *Connector) {
		c.emitter = emitter
	}
}

// WithLoader sets the wallet loader. It is required.
func WithLoader(loader sdk.WalletLoader) Option {
	return func(c *Connector) {
		c.loader = loader
	}
}

// Connector adapts the wallet to the host framework's connector contract.
type Connector struct {
	cfg        Config
	instanceID uuid.UUID
	loader     sdk.WalletLoader
	shared     *chainstate.SharedChainID
	emitter    Emitter

	mu       sync.Mutex
	provider *proxy.ChainScopedProvider
	signer   *proxy.ChainScopedSigner
	isSetup  bool
	detach   []func()
	closed   bool
}

// New validates cfg and creates a connector. Without WithSharedChainID the connector gets its own
// chain cell.
func New(cfg Config, opts ...Option) (*Connector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Connector{
		cfg:        cfg,
		instanceID: uuid.New(),
		emitter:    nopEmitter{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.loader == nil {
		return nil, errLoaderRequired
	}
	if c.shared == nil {
		c.shared = chainstate.New()
	}

	c.shared.OnChange(c.sharedChainChanged)

	return c, nil
}

func (c *Connector) ID() string   { return ID }
func (c *Connector) Name() string { return Name }
func (c *Connector) Type() string { return Type }

// InstanceID identifies this connector in logs.
func (c *Connector) InstanceID() uuid.UUID {
	return c.instanceID
}

// Setup resolves the provider and relays its wallet notifications to the host. Calls after the
// first are no-ops.
func (c *Connector) Setup(ctx context.Context) error {
	p, err := c.Provider(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isSetup || c.closed {
		return nil
	}
	c.isSetup = true

	lggr := sdk.LoggerFrom(ctx)
	relayCtx := context.WithoutCancel(ctx)
	c.detach = []func(){
		p.OnAccountsChanged(c.OnAccountsChanged),
		p.OnChainChanged(func(chainID types.ChainID) {
			if err := c.OnChainChanged(relayCtx, chainID); err != nil {
				lggr.Warnf("Connector %s failed to follow wallet chain %s: %v", c.instanceID, chainID, err)
			}
		}),
		p.OnDisconnect(func(error) { c.OnDisconnect() }),
	}

	lggr.Debugf("Connector %s set up on chain %s", c.instanceID, p.ChainID())

	return nil
}

// Connect opens a wallet session if none is open and returns the connected accounts and chain.
// A declined session yields *UserRejectedRequestError; any other failure *ConnectionError.
func (c *Connector) Connect(ctx context.Context) (types.ConnectInfo, error) {
	c.emit(types.Event{Name: types.EventMessage, Message: types.MessageConnecting})

	wallet, err := c.wallet(ctx)
	if err != nil {
		return types.ConnectInfo{}, NewConnectionError(err)
	}

	if !wallet.IsConnected() {
		res, err := wallet.Connect(ctx, c.cfg.Connect)
		if err != nil {
			return types.ConnectInfo{}, NewConnectionError(err)
		}
		if res.Error != "" {
			return types.ConnectInfo{}, NewUserRejectedRequestError(res.Error)
		}
		if !res.Connected {
			return types.ConnectInfo{}, NewUserRejectedRequestError(reasonConnectionRejected)
		}
	}

	accounts, err := c.Accounts(ctx)
	if err != nil {
		return types.ConnectInfo{}, NewConnectionError(err)
	}

	chainID, err := c.ChainID(ctx)
	if err != nil {
		return types.ConnectInfo{}, NewConnectionError(err)
	}

	info := types.ConnectInfo{ChainID: chainID, Accounts: accounts}
	sdk.LoggerFrom(ctx).Infof("Connector %s connected %s on chain %s", c.instanceID, accounts[0].Hex(), chainID)
	c.OnConnect(info)

	return info, nil
}

// Disconnect closes the wallet session.
func (c *Connector) Disconnect(ctx context.Context) error {
	wallet, err := c.wallet(ctx)
	if err != nil {
		return err
	}

	return wallet.Disconnect(ctx)
}

// Accounts returns the wallet account as seen by the signer of the active chain.
func (c *Connector) Accounts(ctx context.Context) ([]common.Address, error) {
	signer, err := c.Signer(ctx)
	if err != nil {
		return nil, err
	}

	addr, err := signer.Address(ctx)
	if err != nil {
		return nil, err
	}

	return []common.Address{addr}, nil
}

// ChainID returns the shared active chain, falling back to the wallet default before any switch.
func (c *Connector) ChainID(ctx context.Context) (types.ChainID, error) {
	if chainID, ok := c.shared.Get(); ok {
		return chainID, nil
	}

	wallet, err := c.wallet(ctx)
	if err != nil {
		return 0, err
	}

	return wallet.ChainID(), nil
}

// Provider returns the connector's chain-scoped provider, creating it on first use. Chain switch
// requests sent through it go through SwitchChain.
func (c *Connector) Provider(ctx context.Context) (*proxy.ChainScopedProvider, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.provider != nil {
		return c.provider, nil
	}

	wallet, err := c.wallet(ctx)
	if err != nil {
		return nil, NewProviderNotFoundError(c.expectedChainID(), err)
	}

	p, err := proxy.NewChainScopedProvider(ctx, wallet, c.shared, proxy.WithChainSwitcher(
		func(ctx context.Context, chainID types.ChainID) error {
			_, err := c.SwitchChain(ctx, chainID)
			return err
		},
	))
	if err != nil {
		return nil, NewProviderNotFoundError(c.expectedChainID(), err)
	}
	c.provider = p

	return p, nil
}

// Signer returns the connector's chain-scoped signer, creating it on first use.
func (c *Connector) Signer(ctx context.Context) (*proxy.ChainScopedSigner, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.signer != nil {
		return c.signer, nil
	}

	wallet, err := c.wallet(ctx)
	if err != nil {
		return nil, NewProviderNotFoundError(c.expectedChainID(), err)
	}
	c.signer = proxy.NewChainScopedSigner(wallet, c.shared)

	return c.signer, nil
}

// IsAuthorized reports whether the wallet exposes an account. Errors count as not authorized.
func (c *Connector) IsAuthorized(ctx context.Context) bool {
	accounts, err := c.Accounts(ctx)
	if err != nil {
		sdk.LoggerFrom(ctx).Debugf("Connector %s is not authorized: %v", c.instanceID, err)
		return false
	}

	return len(accounts) > 0
}

// SwitchChain makes chainID the active chain of every connector sharing this connector's chain
// cell, then moves the wallet default to it. Chains missing from the wallet's networks yield
// *UnsupportedChainError and leave the active chain unchanged. If the wallet refuses the new
// default, the active chain is moved back to the previous one.
func (c *Connector) SwitchChain(ctx context.Context, chainID types.ChainID) (types.Chain, error) {
	wallet, err := c.wallet(ctx)
	if err != nil {
		return types.Chain{}, err
	}

	networks, err := wallet.Networks(ctx)
	if err != nil {
		return types.Chain{}, fmt.Errorf("failed to list wallet networks: %w", err)
	}

	chain := types.Chain{ID: chainID}
	found := false
	for _, n := range networks {
		if n.ChainID == chainID {
			chain.Name = n.Name
			found = true

			break
		}
	}
	if !found {
		return types.Chain{}, NewUnsupportedChainError(chainID)
	}

	prev, ok := c.shared.Get()
	if !ok {
		prev = wallet.ChainID()
	}

	// The wallet reports the new default through chainChanged. Setting the shared value first
	// makes that notification a no-op in OnChainChanged.
	c.shared.Set(chainID)

	if err := wallet.SetDefaultChainID(ctx, chainID); err != nil {
		if prev != chainID {
			c.shared.Set(prev)
		}

		return types.Chain{}, fmt.Errorf("failed to set wallet default chain %s: %w", chainID, err)
	}

	sdk.LoggerFrom(ctx).Infof("Connector %s switched to chain %s", c.instanceID, chainID)

	return chain, nil
}

// OnAccountsChanged relays a wallet account change. An empty list means the session ended.
func (c *Connector) OnAccountsChanged(accounts []common.Address) {
	if len(accounts) == 0 {
		c.OnDisconnect()
		return
	}

	c.emit(types.Event{Name: types.EventChange, Accounts: accounts})
}

// OnChainChanged follows a chain change reported by the wallet. chain may be any representation
// accepted by types.NormalizeChainID.
func (c *Connector) OnChainChanged(ctx context.Context, chain any) error {
	chainID, err := types.NormalizeChainID(chain)
	if err != nil {
		return err
	}

	if current, ok := c.shared.Get(); ok && current == chainID {
		return nil
	}

	c.shared.Set(chainID)

	wallet, err := c.wallet(ctx)
	if err != nil {
		return err
	}

	return wallet.SetDefaultChainID(ctx, chainID)
}

// OnConnect notifies the host of an established session.
func (c *Connector) OnConnect(info types.ConnectInfo) {
	c.emit(types.Event{Name: types.EventConnect, ChainID: info.ChainID, Accounts: info.Accounts})
}

// OnDisconnect notifies the host that the session ended.
func (c *Connector) OnDisconnect() {
	c.emit(types.Event{Name: types.EventDisconnect})
}

// Close detaches the connector from the wallet and stops all further notifications.
func (c *Connector) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	for _, d := range c.detach {
		d()
	}
	c.detach = nil

	if c.provider != nil {
		c.provider.Close()
	}
}

// sharedChainChanged is registered on the shared chain cell for the connector's lifetime.
func (c *Connector) sharedChainChanged(chainID types.ChainID) {
	chain := types.ChainFromID(chainID)
	c.emit(types.Event{Name: types.EventChange, Chain: &chain, ChainID: chainID})
}

func (c *Connector) emit(ev types.Event) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()

	if closed {
		return
	}
	c.emitter.Emit(ev)
}

// wallet returns the wallet handle, initializing it on first use.
func (c *Connector) wallet(ctx context.Context) (sdk.Wallet, error) {
	wallet, err := c.loader.GetWallet()
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, sdkerrors.ErrWalletNotInitialized) {
		return nil, err
	}

	return c.loader.InitWallet(ctx, c.cfg.ProjectAccessKey, sdk.InitOptions{
		DefaultNetwork: c.cfg.DefaultNetwork,
		WalletAppURL:   c.cfg.walletAppURL(),
		DefaultEIP6492: true,
	})
}

// expectedChainID is the chain a provider would be minted for, used in error reports.
func (c *Connector) expectedChainID() types.ChainID {
	if chainID, ok := c.shared.Get(); ok {
		return chainID
	}

	return c.cfg.DefaultNetwork
}

package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/connector/chainstate"
	"github.com/smartcontractkit/connector/internal/eventhub"
	"github.com/smartcontractkit/connector/sdk"
	"github.com/smartcontractkit/connector/types"
)

var _ sdk.Provider = (*ChainScopedProvider)(nil)

var errMissingSwitchParams = errors.New("missing chain id parameter")

// ChainSwitcher switches the active chain. The default writes the shared chain id directly.
type ChainSwitcher func(ctx context.Context, chainID types.ChainID) error

// ProviderOption configures a ChainScopedProvider.
type ProviderOption func(*ChainScopedProvider)

// WithChainSwitcher routes intercepted chain switch requests through fn.
func WithChainSwitcher(fn ChainSwitcher) ProviderOption {
	return func(p *ChainScopedProvider) {
		p.switchChain = fn
	}
}

// ChainScopedProvider forwards requests to the wallet's provider for the active chain.
//
// Listeners registered through the On* methods are attached to the current delegate and moved to
// the new delegate every time the active chain changes.
type ChainScopedProvider struct {
	scoped      *chainScoped[sdk.Provider]
	switchChain ChainSwitcher

	accountsChanged eventhub.Handlers[[]common.Address]
	chainChanged    eventhub.Handlers[types.ChainID]
	connected       eventhub.Handlers[types.ConnectInfo]
	disconnected    eventhub.Handlers[error]

	relayMu sync.Mutex
	detach  []func()
}

// NewChainScopedProvider creates the provider proxy and binds it to the provider of the current
// chain. Errors from the wallet are returned unchanged.
func NewChainScopedProvider(
	ctx context.Context, wallet sdk.Wallet, shared *chainstate.SharedChainID, opts ...ProviderOption,
) (*ChainScopedProvider, error) {
	p := &ChainScopedProvider{
		switchChain: func(_ context.Context, chainID types.ChainID) error {
			shared.Set(chainID)
			return nil
		},
	}
	for _, opt := range opts {
		opt(p)
	}

	p.scoped = &chainScoped[sdk.Provider]{
		wallet: wallet,
		shared: shared,
		mint:   wallet.Provider,
		onSwap: func(_, next binding[sdk.Provider]) { p.rebind(next.delegate) },
	}

	if _, err := p.scoped.resolve(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

// ChainID returns the active chain.
func (p *ChainScopedProvider) ChainID() types.ChainID {
	return p.scoped.current()
}

// Resolve returns the wallet provider for the active chain.
func (p *ChainScopedProvider) Resolve(ctx context.Context) (sdk.Provider, error) {
	return p.scoped.resolve(ctx)
}

// Request forwards a JSON-RPC request to the provider of the active chain. Chain switch requests
// are handled locally and never reach the delegate.
func (p *ChainScopedProvider) Request(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if method == sdk.MethodSwitchChain {
		return p.handleSwitchChain(ctx, params)
	}

	delegate, err := p.scoped.resolve(ctx)
	if err != nil {
		return nil, err
	}

	return delegate.Request(ctx, method, params...)
}

// Send is the legacy spelling of Request.
func (p *ChainScopedProvider) Send(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if method == sdk.MethodSwitchChain {
		return p.handleSwitchChain(ctx, params)
	}

	delegate, err := p.scoped.resolve(ctx)
	if err != nil {
		return nil, err
	}

	return delegate.Send(ctx, method, params...)
}

func (p *ChainScopedProvider) OnAccountsChanged(fn func([]common.Address)) func() {
	return p.accountsChanged.Add(fn)
}

func (p *ChainScopedProvider) OnChainChanged(fn func(types.ChainID)) func() {
	return p.chainChanged.Add(fn)
}

func (p *ChainScopedProvider) OnConnect(fn func(types.ConnectInfo)) func() {
	return p.connected.Add(fn)
}

func (p *ChainScopedProvider) OnDisconnect(fn func(error)) func() {
	return p.disconnected.Add(fn)
}

// Close detaches the relay from the current delegate.
func (p *ChainScopedProvider) Close() {
	p.relayMu.Lock()
	defer p.relayMu.Unlock()

	for _, d := range p.detach {
		d()
	}
	p.detach = nil
}

func (p *ChainScopedProvider) handleSwitchChain(ctx context.Context, params []any) (json.RawMessage, error) {
	if len(params) == 0 {
		return nil, types.NewParseChainIDError(nil, errMissingSwitchParams)
	}

	chainID, err := types.NormalizeChainID(params[0])
	if err != nil {
		return nil, err
	}

	if err := p.switchChain(ctx, chainID); err != nil {
		return nil, err
	}

	return json.RawMessage("null"), nil
}

// rebind moves the relay subscriptions from the previous delegate to next.
func (p *ChainScopedProvider) rebind(next sdk.Provider) {
	p.relayMu.Lock()
	defer p.relayMu.Unlock()

	for _, d := range p.detach {
		d()
	}

	p.detach = []func(){
		next.OnAccountsChanged(p.accountsChanged.Emit),
		next.OnChainChanged(p.chainChanged.Emit),
		next.OnConnect(p.connected.Emit),
		next.OnDisconnect(p.disconnected.Emit),
	}
}

package proxy

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/smartcontractkit/connector/internal/eventhub"
	"github.com/smartcontractkit/connector/sdk"
	"github.com/smartcontractkit/connector/types"
)

// fakeWallet mints a distinct provider and signer on every call and records how many were minted.
type fakeWallet struct {
	sdk.Wallet

	mu        sync.Mutex
	defaultID types.ChainID
	providers []*fakeProvider
	signers   []*fakeSigner
}

func newFakeWallet(defaultID types.ChainID) *fakeWallet {
	return &fakeWallet{defaultID: defaultID}
}

func (w *fakeWallet) ChainID() types.ChainID {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.defaultID
}

func (w *fakeWallet) Provider(_ context.Context, chainID types.ChainID) (sdk.Provider, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p := &fakeProvider{chainID: chainID}
	w.providers = append(w.providers, p)

	return p, nil
}

func (w *fakeWallet) Signer(_ context.Context, chainID types.ChainID) (sdk.Signer, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := &fakeSigner{chainID: chainID}
	w.signers = append(w.signers, s)

	return s, nil
}

type fakeProvider struct {
	chainID types.ChainID

	accounts    eventhub.Handlers[[]common.Address]
	chains      eventhub.Handlers[types.ChainID]
	connects    eventhub.Handlers[types.ConnectInfo]
	disconnects eventhub.Handlers[error]

	mu           sync.Mutex
	lastMethod   string
	lastParams   []any
	requestCount int
}

func (p *fakeProvider) ChainID() types.ChainID { return p.chainID }

func (p *fakeProvider) Request(_ context.Context, method string, params ...any) (json.RawMessage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lastMethod, p.lastParams = method, params
	p.requestCount++

	return json.RawMessage(fmt.Sprintf("%q", p.chainID.Hex())), nil
}

func (p *fakeProvider) Send(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	return p.Request(ctx, method, params...)
}

func (p *fakeProvider) OnAccountsChanged(fn func([]common.Address)) func() { return p.accounts.Add(fn) }
func (p *fakeProvider) OnChainChanged(fn func(types.ChainID)) func() { return p.chains.Add(fn) }
func (p *fakeProvider) OnConnect(fn func(types.ConnectInfo)) func() { return p.connects.Add(fn) }
func (p *fakeProvider) OnDisconnect(fn func(error)) func() { return p.disconnects.Add(fn) }

type fakeSigner struct {
	chainID types.ChainID
}

func (s *fakeSigner) ChainID() types.ChainID { return s.chainID }

func (s *fakeSigner) Address(context.Context) (common.Address, error) {
	return common.HexToAddress("0x000000000000000000000000000000000000dEaD"), nil
}

func (s *fakeSigner) SignMessage(_ context.Context, message []byte) ([]byte, error) {
	return append([]byte(s.chainID.String()+":"), message...), nil
}

func (s *fakeSigner) SignTransaction(_ context.Context, tx *gethtypes.Transaction) (*gethtypes.Transaction, error) {
	return tx, nil
}

func (s *fakeSigner) SignTypedData(_ context.Context, data apitypes.TypedData) ([]byte, error) {
	return []byte(s.chainID.String() + ":" + data.PrimaryType), nil
}

func (s *fakeSigner) Connect(provider sdk.Provider) (sdk.Signer, error) {
	return &fakeSigner{chainID: provider.ChainID()}, nil
}

// boundChainID returns the chain of the cached delegate, if any.
func (c *chainScoped[T]) boundChainID() (types.ChainID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.bound.chainID, c.bound.ok
}

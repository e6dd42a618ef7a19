package connector

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/connector/internal/testutils"
	"github.com/smartcontractkit/connector/internal/testutils/chaintest"
	"github.com/smartcontractkit/connector/sdk"
	"github.com/smartcontractkit/connector/sdk/evm"
	"github.com/smartcontractkit/connector/types"
)

var testConfig = Config{
	DefaultNetwork:   chaintest.Chain1ID,
	ProjectAccessKey: "access-key",
	Connect:          sdk.ConnectOptions{App: "connector-test"},
}

// eventRecorder is an Emitter that keeps every event it receives.
type eventRecorder struct {
	mu     sync.Mutex
	events []types.Event
}

func (r *eventRecorder) Emit(ev types.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, ev)
}

func (r *eventRecorder) Events() []types.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]types.Event(nil), r.events...)
}

// evmEnv is a go-ethereum wallet loader backed by two in-process chains.
type evmEnv struct {
	signer *testutils.ECDSASigner
	loader *evm.Loader
}

func newEVMEnv(t *testing.T) *evmEnv {
	t.Helper()

	signer := testutils.NewECDSASigner(t)
	chain1 := testutils.NewRPCChain(t, uint64(chaintest.Chain1ID))
	chain2 := testutils.NewRPCChain(t, uint64(chaintest.Chain2ID))
	dialer := testutils.NewDialer(chain1, chain2)

	loader := evm.NewLoader(signer.Key, map[types.ChainID]string{
		chaintest.Chain1ID: chain1.URL(),
		chaintest.Chain2ID: chain2.URL(),
	}, evm.WithDialer(func(ctx context.Context, rawURL string) (evm.RPCClient, error) {
		client, err := dialer.Dial(ctx, rawURL)
		if err != nil {
			return nil, err
		}

		return client, nil
	}))

	return &evmEnv{signer: signer, loader: loader}
}

// newConnector creates a connector over the environment's loader and records its events.
func (e *evmEnv) newConnector(t *testing.T, opts ...Option) (*Connector, *eventRecorder) {
	t.Helper()

	rec := &eventRecorder{}
	opts = append([]Option{WithLoader(e.loader), WithEmitter(rec)}, opts...)

	c, err := New(testConfig, opts...)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	return c, rec
}

// wallet returns the initialized go-ethereum wallet.
func (e *evmEnv) wallet(t *testing.T) *evm.Wallet {
	t.Helper()

	w, err := e.loader.GetWallet()
	require.NoError(t, err)

	return w.(*evm.Wallet)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.3 --config ../.mockery.yaml

package sdk

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/smartcontractkit/connector/types"
)

const (
	// DefaultWalletAppURL is the wallet web UI used when no override is configured.
	DefaultWalletAppURL = "https://sequence.app"

	// MethodSwitchChain is the JSON-RPC method hosts use to request a chain switch (EIP-3326).
	MethodSwitchChain = "wallet_switchEthereumChain"
)

// Wallet is the singleton wallet handle. It supports a single active chain at a time and issues
// one Provider and one Signer per chain.
type Wallet interface {
	IsConnected() bool
	Connect(ctx context.Context, opts ConnectOptions) (ConnectResult, error)
	Disconnect(ctx context.Context) error

	// ChainID returns the wallet's default chain.
	ChainID() types.ChainID
	SetDefaultChainID(ctx context.Context, chainID types.ChainID) error

	// Networks lists the chains the wallet can operate on.
	Networks(ctx context.Context) ([]types.Network, error)

	Provider(ctx context.Context, chainID types.ChainID) (Provider, error)
	Signer(ctx context.Context, chainID types.ChainID) (Signer, error)
}

// WalletLoader obtains the wallet handle. InitWallet is idempotent: once a wallet is initialized
// it is returned again regardless of the arguments.
type WalletLoader interface {
	GetWallet() (Wallet, error)
	InitWallet(ctx context.Context, projectAccessKey string, opts InitOptions) (Wallet, error)
}

// Provider is a chain-specific JSON-RPC provider.
type Provider interface {
	ChainID() types.ChainID
	Request(ctx context.Context, method string, params ...any) (json.RawMessage, error)
	Send(ctx context.Context, method string, params ...any) (json.RawMessage, error)

	// Event registration. Each returns a function that removes the handler.
	OnAccountsChanged(fn func(accounts []common.Address)) func()
	OnChainChanged(fn func(chainID types.ChainID)) func()
	OnConnect(fn func(info types.ConnectInfo)) func()
	OnDisconnect(fn func(err error)) func()
}

// Signer is a chain-specific signer.
type Signer interface {
	ChainID() types.ChainID
	Address(ctx context.Context) (common.Address, error)
	SignMessage(ctx context.Context, message []byte) ([]byte, error)
	SignTransaction(ctx context.Context, tx *gethtypes.Transaction) (*gethtypes.Transaction, error)
	SignTypedData(ctx context.Context, data apitypes.TypedData) ([]byte, error)

	// Connect returns a signer for the same account bound to the given provider's chain.
	Connect(provider Provider) (Signer, error)
}

// ConnectOptions are passed to the wallet when opening a session.
type ConnectOptions struct {
	// App is the name shown to the user in the wallet's connect prompt.
	App string `json:"app" validate:"required"`

	// WalletAppURL overrides the wallet web UI endpoint.
	WalletAppURL string `json:"walletAppURL,omitempty" validate:"omitempty,url"`

	// Expiry is how long the session stays valid. Zero means the wallet's default.
	Expiry time.Duration `json:"expiry,omitempty" validate:"gte=0"`

	Authorize      bool `json:"authorize,omitempty"`
	AskForEmail    bool `json:"askForEmail,omitempty"`
	RefreshSession bool `json:"refresh,omitempty"`
}

// ConnectResult is what the wallet reports for a connect attempt. A non-empty Error means the
// user declined or the wallet refused the session.
type ConnectResult struct {
	Connected bool               `json:"connected"`
	Error     string             `json:"error,omitempty"`
	Session   *types.ConnectInfo `json:"session,omitempty"`
}

// InitOptions configure a wallet handle on first initialization.
type InitOptions struct {
	DefaultNetwork types.ChainID
	WalletAppURL   string
	DefaultEIP6492 bool
}

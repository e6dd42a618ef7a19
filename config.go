package connector

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"

	"github.com/smartcontractkit/connector/sdk"
	"github.com/smartcontractkit/connector/types"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvProjectAccessKey = "CONNECTOR_PROJECT_ACCESS_KEY"
	EnvDefaultNetwork   = "CONNECTOR_DEFAULT_NETWORK"
	EnvAppName          = "CONNECTOR_APP_NAME"
	EnvWalletAppURL     = "CONNECTOR_WALLET_APP_URL"
	EnvSessionExpiry    = "CONNECTOR_SESSION_EXPIRY"
	EnvAskForEmail      = "CONNECTOR_ASK_FOR_EMAIL"
)

// Config is the connector configuration supplied by the host.
type Config struct {
	// DefaultNetwork is the chain the wallet starts on. Zero leaves the choice to the wallet.
	DefaultNetwork types.ChainID `json:"defaultNetwork,omitempty"`

	// ProjectAccessKey is passed to the wallet on initialization.
	ProjectAccessKey string `json:"projectAccessKey" validate:"required"`

	// Connect holds the options used when opening a wallet session.
	Connect sdk.ConnectOptions `json:"connect"`
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid connector config: %w", err)
	}

	return nil
}

// walletAppURL returns the configured wallet UI endpoint or the default one.
func (c Config) walletAppURL() string {
	if c.Connect.WalletAppURL != "" {
		return c.Connect.WalletAppURL
	}

	return sdk.DefaultWalletAppURL
}

// ConfigFromEnv builds a Config from environment variables looked up with getenv. Unset variables
// keep their zero value.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		ProjectAccessKey: getenv(EnvProjectAccessKey),
		Connect: sdk.ConnectOptions{
			App:          getenv(EnvAppName),
			WalletAppURL: getenv(EnvWalletAppURL),
		},
	}

	if v := getenv(EnvDefaultNetwork); v != "" {
		chainID, err := types.NormalizeChainID(v)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", EnvDefaultNetwork, err)
		}
		cfg.DefaultNetwork = chainID
	}

	if v := getenv(EnvSessionExpiry); v != "" {
		expiry, err := cast.ToDurationE(v)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", EnvSessionExpiry, err)
		}
		cfg.Connect.Expiry = expiry
	}

	if v := getenv(EnvAskForEmail); v != "" {
		ask, err := cast.ToBoolE(v)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", EnvAskForEmail, err)
		}
		cfg.Connect.AskForEmail = ask
	}

	return cfg, cfg.Validate()
}

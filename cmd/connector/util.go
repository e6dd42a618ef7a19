package connector

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/joho/godotenv"

	"github.com/smartcontractkit/connector"
	"github.com/smartcontractkit/connector/sdk"
	"github.com/smartcontractkit/connector/sdk/evm"
	"github.com/smartcontractkit/connector/types"
)

const (
	envPrivateKey   = "PRIVATE_KEY"
	envRPCURLPrefix = "RPC_URL_"

	defaultAppName          = "connector-cli"
	defaultProjectAccessKey = "local"
)

// dotenv holds the values of a .env file. Values missing from the file fall back to the process
// environment.
type dotenv map[string]string

func loadEnv(path string) (dotenv, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return values, nil
}

func (e dotenv) get(key string) string {
	if v, ok := e[key]; ok {
		return v
	}

	return os.Getenv(key)
}

func (e dotenv) setDefault(key, value string) {
	if e.get(key) == "" {
		e[key] = value
	}
}

func (e dotenv) privateKey() (*ecdsa.PrivateKey, error) {
	pk := e.get(envPrivateKey)
	if pk == "" {
		return nil, errors.New("PRIVATE_KEY not found in .env file")
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(pk, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid PRIVATE_KEY: %w", err)
	}

	return key, nil
}

// rpcURLs collects every RPC_URL_<chain id> entry from the process environment and the file.
func (e dotenv) rpcURLs() (map[types.ChainID]string, error) {
	entries := map[string]string{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			entries[k] = v
		}
	}
	for k, v := range e {
		entries[k] = v
	}

	urls := make(map[types.ChainID]string)
	for k, v := range entries {
		suffix, ok := strings.CutPrefix(k, envRPCURLPrefix)
		if !ok || v == "" {
			continue
		}

		chainID, err := types.NormalizeChainID(suffix)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", k, err)
		}
		urls[chainID] = v
	}

	if len(urls) == 0 {
		return nil, errors.New("no RPC_URL_<chain id> entries found in .env file")
	}

	return urls, nil
}

// session is a connector over a go-ethereum wallet built from the .env file.
type session struct {
	connector *connector.Connector
	loader    *evm.Loader
}

func openSession(ctx context.Context, flags *rootFlags, walletOpts []evm.WalletOption) (*session, error) {
	env, err := loadEnv(flags.envPath)
	if err != nil {
		return nil, err
	}
	env.setDefault(connector.EnvAppName, defaultAppName)
	env.setDefault(connector.EnvProjectAccessKey, defaultProjectAccessKey)

	key, err := env.privateKey()
	if err != nil {
		return nil, err
	}

	urls, err := env.rpcURLs()
	if err != nil {
		return nil, err
	}

	cfg, err := connector.ConfigFromEnv(env.get)
	if err != nil {
		return nil, err
	}
	if flags.network != "" {
		if cfg.DefaultNetwork, err = types.NormalizeChainID(flags.network); err != nil {
			return nil, err
		}
	}

	lggr := sdk.LoggerFrom(ctx)
	loader := evm.NewLoader(key, urls, walletOpts...)
	c, err := connector.New(cfg,
		connector.WithLoader(loader),
		connector.WithEmitter(connector.EmitterFunc(func(ev types.Event) {
			lggr.Debugf("Connector event %s: %+v", ev.Name, ev)
		})),
	)
	if err != nil {
		return nil, err
	}

	if err := c.Setup(ctx); err != nil {
		return nil, err
	}

	return &session{connector: c, loader: loader}, nil
}

func (s *session) wallet() (*evm.Wallet, error) {
	w, err := s.loader.GetWallet()
	if err != nil {
		return nil, err
	}

	return w.(*evm.Wallet), nil
}

func (s *session) Close() {
	s.connector.Close()
}

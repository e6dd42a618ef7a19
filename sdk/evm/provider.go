package evm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/spf13/cast"

	"github.com/smartcontractkit/connector/sdk"
	sdkerrors "github.com/smartcontractkit/connector/sdk/errors"
	"github.com/smartcontractkit/connector/types"
)

var _ sdk.Provider = (*Provider)(nil)

const (
	methodChainID         = "eth_chainId"
	methodAccounts        = "eth_accounts"
	methodRequestAccounts = "eth_requestAccounts"
	methodPersonalSign    = "personal_sign"
	methodSignTypedDataV4 = "eth_signTypedData_v4"
)

// Provider serves JSON-RPC requests for one chain. Account and signing methods are answered by
// the wallet; everything else goes to the chain's RPC endpoint.
type Provider struct {
	wallet  *Wallet
	chainID types.ChainID
}

func (p *Provider) ChainID() types.ChainID {
	return p.chainID
}

func (p *Provider) Request(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	switch method {
	case methodChainID:
		return json.Marshal(p.chainID.Hex())
	case methodAccounts:
		if !p.wallet.IsConnected() {
			return json.Marshal([]common.Address{})
		}

		return json.Marshal([]common.Address{p.wallet.Address()})
	case methodRequestAccounts:
		if !p.wallet.IsConnected() {
			return nil, sdkerrors.ErrWalletNotConnected
		}

		return json.Marshal([]common.Address{p.wallet.Address()})
	case methodPersonalSign:
		return p.personalSign(ctx, params)
	case methodSignTypedDataV4:
		return p.signTypedData(ctx, params)
	}

	client, release, err := p.wallet.client(ctx, p.chainID)
	if err != nil {
		return nil, err
	}
	defer release()

	var result json.RawMessage
	if err := client.CallContext(ctx, &result, method, params...); err != nil {
		return nil, err
	}

	return result, nil
}

func (p *Provider) Send(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	return p.Request(ctx, method, params...)
}

func (p *Provider) OnAccountsChanged(fn func([]common.Address)) func() {
	return p.wallet.accountsChanged.Add(fn)
}

func (p *Provider) OnChainChanged(fn func(types.ChainID)) func() {
	return p.wallet.chainChanged.Add(fn)
}

func (p *Provider) OnConnect(fn func(types.ConnectInfo)) func() {
	return p.wallet.connects.Add(fn)
}

func (p *Provider) OnDisconnect(fn func(error)) func() {
	return p.wallet.disconnects.Add(fn)
}

// personalSign handles personal_sign with params [data, address].
func (p *Provider) personalSign(ctx context.Context, params []any) (json.RawMessage, error) {
	if len(params) < 2 {
		return nil, fmt.Errorf("%s expects 2 params, got %d", methodPersonalSign, len(params))
	}

	data, err := cast.ToStringE(params[0])
	if err != nil {
		return nil, fmt.Errorf("invalid %s data: %w", methodPersonalSign, err)
	}
	if err := p.checkAccount(params[1]); err != nil {
		return nil, err
	}

	message := []byte(data)
	if strings.HasPrefix(data, "0x") {
		if message, err = hexutil.Decode(data); err != nil {
			return nil, fmt.Errorf("invalid %s data: %w", methodPersonalSign, err)
		}
	}

	sig, err := p.signer().SignMessage(ctx, message)
	if err != nil {
		return nil, err
	}

	return json.Marshal(hexutil.Bytes(sig))
}

// signTypedData handles eth_signTypedData_v4 with params [address, typedData].
func (p *Provider) signTypedData(ctx context.Context, params []any) (json.RawMessage, error) {
	if len(params) < 2 {
		return nil, fmt.Errorf("%s expects 2 params, got %d", methodSignTypedDataV4, len(params))
	}

	if err := p.checkAccount(params[0]); err != nil {
		return nil, err
	}

	var raw []byte
	switch v := params[1].(type) {
	case string:
		raw = []byte(v)
	case json.RawMessage:
		raw = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("invalid typed data: %w", err)
		}
		raw = encoded
	}

	var data apitypes.TypedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("invalid typed data: %w", err)
	}

	sig, err := p.signer().SignTypedData(ctx, data)
	if err != nil {
		return nil, err
	}

	return json.Marshal(hexutil.Bytes(sig))
}

func (p *Provider) checkAccount(param any) error {
	s, err := cast.ToStringE(param)
	if err != nil || !common.IsHexAddress(s) {
		return fmt.Errorf("invalid account %v", param)
	}

	if common.HexToAddress(s) != p.wallet.Address() {
		return fmt.Errorf("account %s is not managed by this wallet", s)
	}

	return nil
}

func (p *Provider) signer() *Signer {
	return &Signer{wallet: p.wallet, chainID: p.chainID}
}

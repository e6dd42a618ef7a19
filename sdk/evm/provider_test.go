package evm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/connector/internal/testutils"
	"github.com/smartcontractkit/connector/internal/testutils/chaintest"
	sdkerrors "github.com/smartcontractkit/connector/sdk/errors"
	"github.com/smartcontractkit/connector/types"
)

func Test_Provider_LocalMethods(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)

	p, err := env.wallet.Provider(ctx, chaintest.Chain2ID)
	require.NoError(t, err)
	assert.Equal(t, chaintest.Chain2ID, p.ChainID())

	got, err := p.Request(ctx, "eth_chainId")
	require.NoError(t, err)
	assert.JSONEq(t, `"`+chaintest.Chain2ID.Hex()+`"`, string(got))

	got, err = p.Request(ctx, "eth_accounts")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))

	_, err = p.Request(ctx, "eth_requestAccounts")
	require.ErrorIs(t, err, sdkerrors.ErrWalletNotConnected)

	_, err = env.wallet.Connect(ctx, testConnectOptions)
	require.NoError(t, err)

	got, err = p.Request(ctx, "eth_requestAccounts")
	require.NoError(t, err)

	var accts []common.Address
	require.NoError(t, json.Unmarshal(got, &accts))
	assert.Equal(t, []common.Address{env.signer.Address()}, accts)

	// none of these reach the endpoint
	assert.Zero(t, env.dialer.Dials(env.chain2.URL()))
}

func Test_Provider_ForwardsToChainEndpoint(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)

	p, err := env.wallet.Provider(ctx, chaintest.Chain2ID)
	require.NoError(t, err)

	got, err := p.Request(ctx, "eth_blockNumber")
	require.NoError(t, err)
	assert.JSONEq(t, `"0x1"`, string(got))

	got, err = p.Send(ctx, "eth_getBalance", env.signer.Address(), "latest")
	require.NoError(t, err)

	var balance hexutil.Big
	require.NoError(t, json.Unmarshal(got, &balance))
	assert.Equal(t, testutils.DefaultBalance, balance.ToInt())

	_, err = p.Request(ctx, "eth_getBalance", env.signer.Address(), "pending")
	require.EqualError(t, err, "unknown block pending")

	assert.Equal(t, []string{"eth_blockNumber", "eth_getBalance", "eth_getBalance"}, env.chain2.Calls())
	assert.Empty(t, env.chain1.Calls())
	assert.Equal(t, 1, env.dialer.Dials(env.chain2.URL()), "connection is reused")

	// a fresh provider for the same chain shares the connection
	again, err := env.wallet.Provider(ctx, chaintest.Chain2ID)
	require.NoError(t, err)
	_, err = again.Request(ctx, "eth_blockNumber")
	require.NoError(t, err)
	assert.Equal(t, 1, env.dialer.Dials(env.chain2.URL()))
}

func Test_Provider_PersonalSign(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.wallet.Connect(ctx, testConnectOptions)
	require.NoError(t, err)

	p, err := env.wallet.Provider(ctx, chaintest.Chain1ID)
	require.NoError(t, err)

	message := []byte("sign in to connector")

	tests := []struct {
		name    string
		give    []any
		wantErr string
	}{
		{
			name: "success: hex data",
			give: []any{hexutil.Encode(message), env.signer.Address().Hex()},
		},
		{
			name: "success: utf8 data",
			give: []any{string(message), env.signer.Address().Hex()},
		},
		{
			name:    "failure: missing params",
			give:    []any{hexutil.Encode(message)},
			wantErr: "personal_sign expects 2 params, got 1",
		},
		{
			name:    "failure: foreign account",
			give:    []any{hexutil.Encode(message), "0x000000000000000000000000000000000000dEaD"},
			wantErr: "account 0x000000000000000000000000000000000000dEaD is not managed by this wallet",
		},
		{
			name:    "failure: invalid account",
			give:    []any{hexutil.Encode(message), "alice"},
			wantErr: "invalid account alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := p.Request(ctx, "personal_sign", tt.give...)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)

			var sig hexutil.Bytes
			require.NoError(t, json.Unmarshal(got, &sig))
			assert.Equal(t, env.signer.Address(), testutils.Recover(t, accounts.TextHash(message), sig))
		})
	}
}

func Test_Provider_SignTypedDataV4(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.wallet.Connect(ctx, testConnectOptions)
	require.NoError(t, err)

	p, err := env.wallet.Provider(ctx, chaintest.Chain1ID)
	require.NoError(t, err)

	data := mailTypedData(chaintest.Chain1ID)
	encoded, err := json.Marshal(data)
	require.NoError(t, err)

	got, err := p.Request(ctx, "eth_signTypedData_v4", env.signer.Address().Hex(), string(encoded))
	require.NoError(t, err)

	var sig hexutil.Bytes
	require.NoError(t, json.Unmarshal(got, &sig))

	hash, _, err := apitypes.TypedDataAndHash(data)
	require.NoError(t, err)
	assert.Equal(t, env.signer.Address(), testutils.Recover(t, hash, sig))

	_, err = p.Request(ctx, "eth_signTypedData_v4", env.signer.Address().Hex(), "{")
	require.ErrorContains(t, err, "invalid typed data")
}

func Test_Provider_EventsComeFromWallet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)

	p, err := env.wallet.Provider(ctx, chaintest.Chain1ID)
	require.NoError(t, err)

	var (
		chains   []types.ChainID
		accts    [][]common.Address
		connects int
		discs    int
	)
	p.OnChainChanged(func(id types.ChainID) { chains = append(chains, id) })
	p.OnAccountsChanged(func(a []common.Address) { accts = append(accts, a) })
	p.OnConnect(func(types.ConnectInfo) { connects++ })
	unsubscribe := p.OnDisconnect(func(error) { discs++ })

	_, err = env.wallet.Connect(ctx, testConnectOptions)
	require.NoError(t, err)
	require.NoError(t, env.wallet.SetDefaultChainID(ctx, chaintest.Chain2ID))

	unsubscribe()
	require.NoError(t, env.wallet.Disconnect(ctx))

	assert.Equal(t, []types.ChainID{chaintest.Chain2ID}, chains)
	assert.Equal(t, [][]common.Address{{env.signer.Address()}}, accts)
	assert.Equal(t, 1, connects)
	assert.Equal(t, 0, discs)
}

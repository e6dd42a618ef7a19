package evm

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/connector/internal/testutils"
	"github.com/smartcontractkit/connector/internal/testutils/chaintest"
	sdkerrors "github.com/smartcontractkit/connector/sdk/errors"
	"github.com/smartcontractkit/connector/types"
)

func mailTypedData(chainID types.ChainID) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "chainId", Type: "uint256"},
			},
			"Mail": {
				{Name: "contents", Type: "string"},
			},
		},
		PrimaryType: "Mail",
		Domain: apitypes.TypedDataDomain{
			Name:    "connector",
			ChainId: math.NewHexOrDecimal256(int64(chainID)),
		},
		Message: apitypes.TypedDataMessage{"contents": "hello"},
	}
}

func Test_Signer_RequiresSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)

	s, err := env.wallet.Signer(ctx, chaintest.Chain1ID)
	require.NoError(t, err)

	_, err = s.Address(ctx)
	require.ErrorIs(t, err, sdkerrors.ErrWalletNotConnected)

	_, err = s.SignMessage(ctx, []byte("hi"))
	require.ErrorIs(t, err, sdkerrors.ErrWalletNotConnected)

	_, err = s.SignTypedData(ctx, mailTypedData(chaintest.Chain1ID))
	require.ErrorIs(t, err, sdkerrors.ErrWalletNotConnected)

	_, err = s.SignTransaction(ctx, gethtypes.NewTx(&gethtypes.LegacyTx{}))
	require.ErrorIs(t, err, sdkerrors.ErrWalletNotConnected)
}

func Test_Signer_SignMessage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.wallet.Connect(ctx, testConnectOptions)
	require.NoError(t, err)

	s, err := env.wallet.Signer(ctx, chaintest.Chain1ID)
	require.NoError(t, err)

	addr, err := s.Address(ctx)
	require.NoError(t, err)
	assert.Equal(t, env.signer.Address(), addr)

	message := []byte("hello connector")
	sig, err := s.SignMessage(ctx, message)
	require.NoError(t, err)

	require.Len(t, sig, 65)
	assert.GreaterOrEqual(t, sig[64], byte(types.SignatureVOffset))
	assert.Equal(t, env.signer.Address(), testutils.Recover(t, accounts.TextHash(message), sig))
}

func Test_Signer_SignTransaction(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.wallet.Connect(ctx, testConnectOptions)
	require.NoError(t, err)

	to := common.HexToAddress("0x000000000000000000000000000000000000dEaD")
	chainID := chaintest.Chain2ID

	tests := []struct {
		name    string
		give    *gethtypes.Transaction
		wantErr string
	}{
		{
			name: "success: dynamic fee tx",
			give: gethtypes.NewTx(&gethtypes.DynamicFeeTx{
				ChainID:   chainID.Big(),
				Nonce:     1,
				GasTipCap: big.NewInt(1),
				GasFeeCap: big.NewInt(2),
				Gas:       21000,
				To:        &to,
				Value:     big.NewInt(1),
			}),
		},
		{
			name: "success: legacy tx is replay protected",
			give: gethtypes.NewTx(&gethtypes.LegacyTx{
				Nonce:    2,
				GasPrice: big.NewInt(1),
				Gas:      21000,
				To:       &to,
				Value:    big.NewInt(1),
			}),
		},
		{
			name: "failure: tx for another chain",
			give: gethtypes.NewTx(&gethtypes.DynamicFeeTx{
				ChainID: chaintest.Chain1ID.Big(),
				Gas:     21000,
				To:      &to,
			}),
			wantErr: "invalid chain ID: expected 11155111, received 1337",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := env.wallet.Signer(ctx, chainID)
			require.NoError(t, err)

			signed, err := s.SignTransaction(ctx, tt.give)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			sender, err := gethtypes.Sender(gethtypes.LatestSignerForChainID(chainID.Big()), signed)
			require.NoError(t, err)
			assert.Equal(t, env.signer.Address(), sender)
			assert.Zero(t, chainID.Big().Cmp(signed.ChainId()))
		})
	}
}

func Test_Signer_SignTypedData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.wallet.Connect(ctx, testConnectOptions)
	require.NoError(t, err)

	s, err := env.wallet.Signer(ctx, chaintest.Chain1ID)
	require.NoError(t, err)

	data := mailTypedData(chaintest.Chain1ID)
	sig, err := s.SignTypedData(ctx, data)
	require.NoError(t, err)

	hash, _, err := apitypes.TypedDataAndHash(data)
	require.NoError(t, err)
	assert.Equal(t, env.signer.Address(), testutils.Recover(t, hash, sig))

	_, err = s.SignTypedData(ctx, mailTypedData(chaintest.Chain2ID))
	require.EqualError(t, err, "invalid chain ID: expected 1337, received 11155111")
}

func Test_Signer_Connect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)

	s, err := env.wallet.Signer(ctx, chaintest.Chain1ID)
	require.NoError(t, err)
	p, err := env.wallet.Provider(ctx, chaintest.Chain2ID)
	require.NoError(t, err)

	connected, err := s.Connect(p)
	require.NoError(t, err)
	assert.Equal(t, chaintest.Chain2ID, connected.ChainID())
}

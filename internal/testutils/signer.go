package testutils

import (
	"crypto/ecdsa"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/connector/types"
)

// Note: should only be used for testing purposes
type ECDSASigner struct {
	Key *ecdsa.PrivateKey
}

func NewECDSASigner(t *testing.T) *ECDSASigner {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	return &ECDSASigner{Key: key}
}

func (s *ECDSASigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.Key.PublicKey)
}

// Recover returns the address that produced a 65 byte wallet signature over hash.
func Recover(t *testing.T, hash []byte, sig []byte) common.Address {
	t.Helper()

	parsed, err := types.NewSignatureFromBytes(sig)
	require.NoError(t, err)

	addr, err := parsed.Recover(hash)
	require.NoError(t, err)

	return addr
}

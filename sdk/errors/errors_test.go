package sdkerrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		expected string
	}{
		{NewInvalidChainIDError(1, 137), "invalid chain ID: expected 1, received 137"},
		{NewChainNotInitializedError(10), "chain 10 is not initialized in the wallet"},
		{ErrWalletNotInitialized, "wallet not initialized"},
		{ErrWalletNotConnected, "wallet not connected"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.err.Error())
	}
}

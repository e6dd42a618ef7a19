package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ChainFromID(t *testing.T) {
	t.Parallel()

	got := ChainFromID(1)
	assert.Equal(t, Chain{ID: 1, Name: "ethereum-mainnet"}, got)

	unknown := ChainFromID(987654321987)
	assert.Equal(t, Chain{ID: 987654321987}, unknown)
}

func Test_ContainsChain(t *testing.T) {
	t.Parallel()

	networks := []Network{{ChainID: 1}, {ChainID: 137}}

	assert.True(t, ContainsChain(networks, 137))
	assert.False(t, ContainsChain(networks, 10))
	assert.False(t, ContainsChain(nil, 1))
}

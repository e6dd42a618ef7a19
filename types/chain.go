package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	chainsel "github.com/smartcontractkit/chain-selectors"
)

// Chain describes a chain as reported to the host framework in change notifications.
type Chain struct {
	ID          ChainID `json:"id"`
	Name        string  `json:"name,omitempty"`
	Unsupported bool    `json:"unsupported"`
}

// ChainFromID builds a Chain descriptor, naming it from the chain-selectors registry when the id
// is a known EVM chain.
func ChainFromID(id ChainID) Chain {
	return Chain{ID: id, Name: ChainName(id)}
}

// ChainName returns the chain-selectors name of an EVM chain id, or an empty string when the id
// is not registered.
func ChainName(id ChainID) string {
	ch, exists := chainsel.ChainByEvmChainID(uint64(id))
	if !exists {
		return ""
	}

	return ch.Name
}

// Network is a chain the wallet is able to operate on.
type Network struct {
	ChainID ChainID `json:"chainId"`
	Name    string  `json:"name"`
}

// ContainsChain reports whether networks includes the given chain id.
func ContainsChain(networks []Network, id ChainID) bool {
	for _, n := range networks {
		if n.ChainID == id {
			return true
		}
	}

	return false
}

package chaintest

import (
	cselectors "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/connector/types"
)

var (
	Chain1ID   = types.ChainID(cselectors.GETH_TESTNET.EvmChainID) // 1337
	Chain1Name = cselectors.GETH_TESTNET.Name

	Chain2ID   = types.ChainID(cselectors.ETHEREUM_TESTNET_SEPOLIA.EvmChainID) // 11155111
	Chain2Name = cselectors.ETHEREUM_TESTNET_SEPOLIA.Name

	Chain3ID   = types.ChainID(cselectors.ETHEREUM_TESTNET_SEPOLIA_BASE_1.EvmChainID) // 84532
	Chain3Name = cselectors.ETHEREUM_TESTNET_SEPOLIA_BASE_1.Name

	// UnsupportedChainID is a chain id no test wallet is configured for.
	UnsupportedChainID = types.ChainID(999999999)
)

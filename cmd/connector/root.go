package connector

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/connector/sdk/evm"
)

type rootFlags struct {
	envPath string
	network string
}

// BuildConnectorCmd returns the root command. walletOpts configure the go-ethereum wallet every
// subcommand opens.
func BuildConnectorCmd(walletOpts ...evm.WalletOption) *cobra.Command {
	flags := &rootFlags{}

	cmd := cobra.Command{
		Use:          "connector",
		Short:        "Drive the wallet connector against JSON-RPC endpoints",
		Long:         `Configure a private key (PRIVATE_KEY) and one RPC_URL_<chain id> per chain in a .env file.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.envPath, "env", ".env", "Path of the .env file")
	cmd.PersistentFlags().StringVar(&flags.network, "network", "", "Default network, as a decimal or 0x-prefixed chain id")

	cmd.AddCommand(newAccountsCmd(flags, walletOpts))
	cmd.AddCommand(newChainIDCmd(flags, walletOpts))
	cmd.AddCommand(newNetworksCmd(flags, walletOpts))
	cmd.AddCommand(newSwitchChainCmd(flags, walletOpts))
	cmd.AddCommand(newSignMessageCmd(flags, walletOpts))
	cmd.AddCommand(newRequestCmd(flags, walletOpts))

	return &cmd
}

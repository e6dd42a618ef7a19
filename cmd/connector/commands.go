package connector

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/connector/sdk/evm"
	"github.com/smartcontractkit/connector/types"
)

func newAccountsCmd(flags *rootFlags, walletOpts []evm.WalletOption) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Connect the wallet and print its accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), flags, walletOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			info, err := s.connector.Connect(cmd.Context())
			if err != nil {
				return err
			}

			for _, a := range info.Accounts {
				fmt.Fprintln(cmd.OutOrStdout(), a.Hex())
			}

			return nil
		},
	}
}

func newChainIDCmd(flags *rootFlags, walletOpts []evm.WalletOption) *cobra.Command {
	return &cobra.Command{
		Use:   "chain-id",
		Short: "Print the active chain id",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), flags, walletOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			chainID, err := s.connector.ChainID(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", chainID, chainID.Hex())

			return nil
		},
	}
}

func newNetworksCmd(flags *rootFlags, walletOpts []evm.WalletOption) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List the networks the wallet supports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), flags, walletOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			w, err := s.wallet()
			if err != nil {
				return err
			}

			networks, err := w.Networks(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range networks {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", n.ChainID, n.Name)
			}

			if verify {
				if err := w.CheckNetworks(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All endpoints verified")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "Check that every endpoint serves its configured chain")

	return cmd
}

func newSwitchChainCmd(flags *rootFlags, walletOpts []evm.WalletOption) *cobra.Command {
	var chain string

	cmd := &cobra.Command{
		Use:   "switch-chain",
		Short: "Switch the active chain and print the chain id reported by its endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			chainID, err := types.NormalizeChainID(chain)
			if err != nil {
				return err
			}

			s, err := openSession(cmd.Context(), flags, walletOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			switched, err := s.connector.SwitchChain(cmd.Context(), chainID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Switched to %s (%s)\n", switched.Name, switched.ID)

			p, err := s.connector.Provider(cmd.Context())
			if err != nil {
				return err
			}

			res, err := p.Request(cmd.Context(), "eth_chainId")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "eth_chainId: %s\n", res)

			return nil
		},
	}

	cmd.Flags().StringVar(&chain, "chain", "", "Target chain id, decimal or 0x-prefixed")
	_ = cmd.MarkFlagRequired("chain")

	return cmd
}

func newSignMessageCmd(flags *rootFlags, walletOpts []evm.WalletOption) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "sign-message",
		Short: "Sign a message with the EIP-191 personal message prefix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), flags, walletOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			if _, err = s.connector.Connect(cmd.Context()); err != nil {
				return err
			}

			signer, err := s.connector.Signer(cmd.Context())
			if err != nil {
				return err
			}

			sig, err := signer.SignMessage(cmd.Context(), []byte(message))
			if err != nil {
				return fmt.Errorf("failed to sign message: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(sig))

			return nil
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "Message to sign")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newRequestCmd(flags *rootFlags, walletOpts []evm.WalletOption) *cobra.Command {
	var (
		method string
		params string
	)

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Send a JSON-RPC request through the connector's provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var args []any
			if err := json.Unmarshal([]byte(params), &args); err != nil {
				return fmt.Errorf("params must be a JSON array: %w", err)
			}

			s, err := openSession(cmd.Context(), flags, walletOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := s.connector.Provider(cmd.Context())
			if err != nil {
				return err
			}

			res, err := p.Request(cmd.Context(), method, args...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(res))

			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "", "JSON-RPC method")
	cmd.Flags().StringVar(&params, "params", "[]", "JSON array of params")
	_ = cmd.MarkFlagRequired("method")

	return cmd
}

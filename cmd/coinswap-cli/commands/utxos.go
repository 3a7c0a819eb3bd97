package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap"
)

// utxos: list every wallet UTXO with its spend information.
func utxosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "utxos",
		Short: "List wallet UTXOs with spend information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaker(func(t *coinswap.Taker) error {
				infos, err := t.ListUTXOs()
				if err != nil {
					return err
				}
				return printJSON(infos)
			})
		},
	}
}

// lock-utxos: lock contract and swap-reserved outputs in the node's wallet.
func lockUTXOsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock-utxos",
		Short: "Lock contract and swap-reserved outputs against ordinary spends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaker(func(t *coinswap.Taker) error {
				if err := t.LockUnspendableUTXOs(); err != nil {
					return err
				}
				fmt.Println("unspendable utxos locked")
				return nil
			})
		},
	}
}

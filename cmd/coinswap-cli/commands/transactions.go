package commands

import (
	"github.com/spf13/cobra"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap"
)

// transactions: list wallet transactions, newest first.
func transactionsCmd() *cobra.Command {
	var count, skip uint32
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List wallet transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var countPtr, skipPtr *uint32
			if cmd.Flags().Changed("count") {
				countPtr = &count
			}
			if cmd.Flags().Changed("skip") {
				skipPtr = &skip
			}
			return withTaker(func(t *coinswap.Taker) error {
				txs, err := t.GetTransactions(countPtr, skipPtr)
				if err != nil {
					return err
				}
				return printJSON(txs)
			})
		},
	}
	cmd.Flags().Uint32Var(&count, "count", 0, "max transactions to return (default: all)")
	cmd.Flags().Uint32Var(&skip, "skip", 0, "transactions to skip from the newest")
	return cmd
}

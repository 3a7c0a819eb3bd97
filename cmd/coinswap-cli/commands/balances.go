package commands

import (
	"github.com/spf13/cobra"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap"
)

// balances: print the wallet balance breakdown in satoshis.
func balancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show the wallet balance breakdown in satoshis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaker(func(t *coinswap.Taker) error {
				b, err := t.GetBalances()
				if err != nil {
					return err
				}
				return printJSON(b)
			})
		},
	}
}

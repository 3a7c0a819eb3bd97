package commands

import (
	"github.com/spf13/cobra"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap"
)

// fees: print mempool fee estimates. Does not need a wallet.
func feesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fees",
		Short: "Show mempool fee estimates in sat/vB",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rates, err := coinswap.FetchMempoolFees()
			if err != nil {
				return err
			}
			return printJSON(rates)
		},
	}
}

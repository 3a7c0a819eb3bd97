package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap"
)

// swap <amount>: run a full coinswap for amount satoshis. Blocks until the
// swap completes or fails.
func swapCmd() *cobra.Command {
	var (
		makers    uint32
		outpoints []string
	)
	cmd := &cobra.Command{
		Use:   "swap <amount-sats>",
		Short: "Execute a coinswap for the given amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			selected, err := parseOutPoints(outpoints)
			if err != nil {
				return err
			}
			return withTaker(func(t *coinswap.Taker) error {
				report, err := t.DoCoinswap(coinswap.SwapParams{
					SendAmount:        amount,
					MakerCount:        makers,
					SelectedOutpoints: selected,
				})
				if err != nil {
					return err
				}
				if report == nil {
					fmt.Println("no eligible makers available")
					return nil
				}
				return printJSON(report)
			})
		},
	}
	cmd.Flags().Uint32Var(&makers, "makers", 2, "number of maker hops")
	cmd.Flags().StringArrayVar(&outpoints, "outpoint", nil, "restrict coin selection to txid:vout (repeatable)")
	return cmd
}

// recover: sweep funds stuck in contract outputs after an aborted swap.
func recoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recover",
		Short: "Recover funds from incomplete swaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaker(func(t *coinswap.Taker) error {
				if err := t.RecoverFromSwap(); err != nil {
					return err
				}
				fmt.Println("recovery complete")
				return nil
			})
		},
	}
}

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap"
)

// send <address> <amount>: pay amount satoshis to address.
func sendCmd() *cobra.Command {
	var (
		feeRate   float64
		outpoints []string
	)
	cmd := &cobra.Command{
		Use:   "send <address> <amount-sats>",
		Short: "Send satoshis to an address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			var feeRatePtr *float64
			if cmd.Flags().Changed("fee-rate") {
				feeRatePtr = &feeRate
			}
			selected, err := parseOutPoints(outpoints)
			if err != nil {
				return err
			}
			return withTaker(func(t *coinswap.Taker) error {
				txid, err := t.SendToAddress(args[0], amount, feeRatePtr, selected)
				if err != nil {
					return err
				}
				fmt.Println(txid)
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&feeRate, "fee-rate", 0, "fee rate in sat/vB (default: wallet estimate)")
	cmd.Flags().StringArrayVar(&outpoints, "outpoint", nil, "restrict coin selection to txid:vout (repeatable)")
	return cmd
}

func parseOutPoints(specs []string) ([]coinswap.OutPoint, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make([]coinswap.OutPoint, len(specs))
	for i, spec := range specs {
		txid, voutStr, ok := strings.Cut(spec, ":")
		if !ok {
			return nil, fmt.Errorf("invalid outpoint %q: want txid:vout", spec)
		}
		vout, err := strconv.ParseUint(voutStr, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid outpoint %q: %w", spec, err)
		}
		out[i] = coinswap.OutPoint{Txid: coinswap.Txid(txid), Vout: uint32(vout)}
	}
	return out, nil
}

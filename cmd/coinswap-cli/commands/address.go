package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap"
)

// address: derive receive addresses, or change addresses with --internal.
func addressCmd() *cobra.Command {
	var (
		addrType string
		internal bool
		count    uint32
	)
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Derive the next external receive address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var t coinswap.AddressType
			switch addrType {
			case "p2wpkh":
				t = coinswap.AddressP2WPKH
			case "p2tr":
				t = coinswap.AddressP2TR
			default:
				return fmt.Errorf("unknown address type %q (want p2wpkh or p2tr)", addrType)
			}
			return withTaker(func(taker *coinswap.Taker) error {
				if internal {
					addrs, err := taker.NextInternalAddresses(count, t)
					if err != nil {
						return err
					}
					for _, a := range addrs {
						fmt.Println(a)
					}
					return nil
				}
				addr, err := taker.NextExternalAddress(t)
				if err != nil {
					return err
				}
				fmt.Println(addr)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&addrType, "type", "p2wpkh", "address type: p2wpkh or p2tr")
	cmd.Flags().BoolVar(&internal, "internal", false, "derive internal (change) addresses instead")
	cmd.Flags().Uint32Var(&count, "count", 1, "number of internal addresses to derive")
	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap"
)

// wallet-name: print the name of the wallet the taker owns.
func walletNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wallet-name",
		Short: "Show the name of the active wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaker(func(t *coinswap.Taker) error {
				name, err := t.WalletName()
				if err != nil {
					return err
				}
				fmt.Println(name)
				return nil
			})
		},
	}
}

// version: print binding and engine versions.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show binding and engine versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("binding:", coinswap.BindingVersion())
			if v := coinswap.EngineVersion(); v != "" {
				fmt.Println("engine: ", v)
			}
			return nil
		},
	}
}

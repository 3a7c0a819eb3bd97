package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap"
)

// offers: fetch and print the current offerbook.
func offersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "offers",
		Short: "Fetch the current maker offerbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaker(func(t *coinswap.Taker) error {
				book, err := t.FetchOffers()
				if err != nil {
					return err
				}
				return printJSON(book)
			})
		},
	}
}

// makers: print just the maker addresses from the offerbook.
func makersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "makers",
		Short: "List known maker addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaker(func(t *coinswap.Taker) error {
				addrs, err := t.AllMakerAddresses()
				if err != nil {
					return err
				}
				for _, a := range addrs {
					fmt.Println(a)
				}
				return nil
			})
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap"
)

// sync-status: report whether the background offerbook sync is running.
func syncStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-status",
		Short: "Show whether the background offerbook sync is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaker(func(t *coinswap.Taker) error {
				if t.IsOfferbookSyncing() {
					fmt.Println("syncing")
				} else {
					fmt.Println("idle")
				}
				return nil
			})
		},
	}
}

// sync-now: trigger an immediate offerbook refresh.
func syncNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-now",
		Short: "Trigger an immediate offerbook refresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaker(func(t *coinswap.Taker) error {
				if err := t.RunOfferSyncNow(); err != nil {
					return err
				}
				fmt.Println("sync triggered")
				return nil
			})
		},
	}
}

// sync-save: rescan the wallet against the node and persist the result.
func syncSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-save",
		Short: "Rescan the wallet and persist the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaker(func(t *coinswap.Taker) error {
				if err := t.SyncAndSave(); err != nil {
					return err
				}
				fmt.Println("wallet synced")
				return nil
			})
		},
	}
}

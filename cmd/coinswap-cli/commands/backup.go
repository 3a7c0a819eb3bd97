package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap"
)

// backup <destination>: write an encrypted wallet backup.
func backupCmd() *cobra.Command {
	var backupPass string
	cmd := &cobra.Command{
		Use:   "backup <destination>",
		Short: "Write an encrypted wallet backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var passPtr *string
			if cmd.Flags().Changed("backup-password") {
				passPtr = &backupPass
			}
			return withTaker(func(t *coinswap.Taker) error {
				if err := t.Backup(args[0], passPtr); err != nil {
					return err
				}
				fmt.Println("backup written to", args[0])
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&backupPass, "backup-password", "", "passphrase for the backup file")
	return cmd
}

// restore <backup-file>: recreate a wallet from a backup. Runs without an
// open taker; the restored wallet is used by later commands.
func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <backup-file>",
		Short: "Restore a wallet from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rpc := coinswap.DefaultRPCConfig()
			if rpcURL != "" {
				rpc.URL = rpcURL
			}
			if rpcUser != "" {
				rpc.Username = rpcUser
			}
			if rpcPass != "" {
				rpc.Password = rpcPass
			}
			if rpcWallet != "" {
				rpc.WalletName = rpcWallet
			}
			opts := coinswap.RestoreOptions{
				DataDir:        dataDir,
				WalletFileName: walletFile,
				RPC:            rpc,
				BackupFilePath: args[0],
			}
			if rootCmd.PersistentFlags().Changed("password") {
				opts.Password = &password
			}
			if err := coinswap.RestoreWallet(opts); err != nil {
				return err
			}
			fmt.Println("wallet restored")
			return nil
		},
	}
}

package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap"
	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap/logging"
)

var (
	dataDir     string
	walletFile  string
	rpcURL      string
	rpcUser     string
	rpcPass     string
	rpcWallet   string
	zmqAddr     string
	controlPort uint16
	torAuthPass string
	password    string
	logLevel    string

	rootCmd *cobra.Command
)

func Execute() error {
	rootCmd = &cobra.Command{
		Use:           "coinswap-cli",
		Short:         "Taker-side coinswap wallet CLI",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			if err := logging.SetupEngine(dataDir, level); err != nil {
				// Commands that need the engine fail on their own; file
				// logging being unavailable should not block, say, version.
				if !errors.Is(err, coinswap.ErrNotBuilt) {
					return err
				}
				slog.Warn("engine logging unavailable", "err", err)
			}
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data-dir", "", "data directory (default: engine's per-user location)")
	pf.StringVar(&walletFile, "wallet", "", "wallet file name (default: engine default)")
	pf.StringVar(&rpcURL, "rpc-url", "", "bitcoind RPC URL (default: engine default)")
	pf.StringVar(&rpcUser, "rpc-user", "", "bitcoind RPC username")
	pf.StringVar(&rpcPass, "rpc-pass", "", "bitcoind RPC password")
	pf.StringVar(&rpcWallet, "rpc-wallet", "", "bitcoind wallet name")
	pf.StringVar(&zmqAddr, "zmq", "tcp://127.0.0.1:28332", "bitcoind ZMQ block notification endpoint")
	pf.Uint16Var(&controlPort, "control-port", 0, "Tor control port (0: engine default)")
	pf.StringVar(&torAuthPass, "tor-auth", "", "Tor control port password")
	pf.StringVar(&password, "password", "", "wallet encryption passphrase")
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		balancesCmd(), addressCmd(), transactionsCmd(), utxosCmd(), lockUTXOsCmd(), sendCmd(),
		swapCmd(), offersCmd(), makersCmd(), recoverCmd(),
		syncStatusCmd(), syncNowCmd(), syncSaveCmd(),
		backupCmd(), restoreCmd(),
		feesCmd(), walletNameCmd(), versionCmd(),
	)
	return rootCmd.Execute()
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

func initOptions() coinswap.InitOptions {
	opts := coinswap.InitOptions{
		DataDir:        dataDir,
		WalletFileName: walletFile,
		ZmqAddr:        zmqAddr,
	}
	if rpcURL != "" {
		rpc := coinswap.DefaultRPCConfig()
		rpc.URL = rpcURL
		if rpcUser != "" {
			rpc.Username = rpcUser
		}
		if rpcPass != "" {
			rpc.Password = rpcPass
		}
		if rpcWallet != "" {
			rpc.WalletName = rpcWallet
		}
		opts.RPC = &rpc
	}
	if controlPort != 0 {
		port := controlPort
		opts.ControlPort = &port
	}
	if torAuthPass != "" {
		opts.TorAuthPassword = &torAuthPass
	}
	if rootCmd.PersistentFlags().Changed("password") {
		opts.Password = &password
	}
	return opts
}

// withTaker opens a taker for one command and guarantees the handle is
// released before the process exits.
func withTaker(fn func(*coinswap.Taker) error) error {
	taker, err := coinswap.Init(initOptions())
	if err != nil {
		return err
	}
	defer taker.Close()
	return fn(taker)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

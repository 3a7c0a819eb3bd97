package coinswap

// RPCConfig describes the bitcoind RPC endpoint the engine's wallet talks
// to. The value is immutable once passed to Init.
type RPCConfig struct {
	URL        string
	Username   string
	Password   string
	WalletName string
}

// DefaultRPCConfig returns the engine's conventional signet defaults.
func DefaultRPCConfig() RPCConfig {
	return RPCConfig{
		URL:        "http://127.0.0.1:38332",
		Username:   "user",
		Password:   "password",
		WalletName: "coinswap_wallet",
	}
}

// InitOptions configures one taker instance. The zero value of an optional
// field means "engine default"; pointer fields exist where absent and zero
// are different things (a nil ControlPort is not port 0, a nil Password is
// an unencrypted wallet rather than an empty passphrase).
type InitOptions struct {
	// DataDir overrides the per-user data directory. Empty uses the
	// engine's default location.
	DataDir string

	// WalletFileName selects the wallet file under the data directory.
	// Empty uses the engine's default wallet name.
	WalletFileName string

	// RPC is the bitcoind endpoint. Nil uses the engine's default.
	RPC *RPCConfig

	// ControlPort is the Tor control port. Nil lets the engine decide.
	ControlPort *uint16

	// TorAuthPassword authenticates against the Tor control port.
	TorAuthPassword *string

	// ZmqAddr is the bitcoind ZMQ block notification endpoint. Required.
	ZmqAddr string

	// Password decrypts an encrypted wallet file. Nil means the wallet is
	// not encrypted; an empty string is a (valid) empty passphrase.
	Password *string
}

// RestoreOptions configures RestoreWallet.
type RestoreOptions struct {
	DataDir        string
	WalletFileName string
	RPC            RPCConfig
	BackupFilePath string
	Password       *string
}

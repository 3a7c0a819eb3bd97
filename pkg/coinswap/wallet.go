package coinswap

import (
	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap/internal/backend"
)

// Free functions that do not need a taker handle.

// FetchMempoolFees queries public fee estimation services through the
// engine and returns sat/vB estimates for three confirmation targets.
func FetchMempoolFees() (FeeRates, error) {
	raw, err := backend.FetchMempoolFees()
	if err != nil {
		return FeeRates{}, remapError(err)
	}
	return decodeFeeRates(raw)
}

// IsWalletEncrypted inspects a wallet file on disk without opening it.
func IsWalletEncrypted(walletPath string) (bool, error) {
	req, err := encodeWalletPathRequest(walletPath)
	if err != nil {
		return false, err
	}
	encrypted, err := backend.IsWalletEncrypted(req)
	if err != nil {
		return false, remapError(err)
	}
	return encrypted, nil
}

// RestoreWallet recreates a wallet file from a backup archive. The restored
// wallet is opened with a fresh Init call afterwards.
func RestoreWallet(opts RestoreOptions) error {
	req, err := encodeRestoreRequest(opts)
	if err != nil {
		return err
	}
	return remapError(backend.RestoreWallet(req))
}

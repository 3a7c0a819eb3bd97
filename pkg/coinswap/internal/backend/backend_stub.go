//go:build !cgo || windows

package backend

import "unsafe"

// Stub implementations used when the native bindings are not linked in.
// Every fallible entry point fails with ErrNotBuilt; the public package
// surfaces that verbatim so callers can detect an unlinked binary.

func TakerInit([]byte) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func TakerFree(unsafe.Pointer) {}

func TakerGetBalances(unsafe.Pointer) ([]byte, error) { return nil, ErrNotBuilt }

func TakerNextExternalAddress(unsafe.Pointer, []byte) ([]byte, error) { return nil, ErrNotBuilt }

func TakerNextInternalAddresses(unsafe.Pointer, []byte) ([]byte, error) { return nil, ErrNotBuilt }

func TakerGetTransactions(unsafe.Pointer, []byte) ([]byte, error) { return nil, ErrNotBuilt }

func TakerListUTXOs(unsafe.Pointer) ([]byte, error) { return nil, ErrNotBuilt }

func TakerLockUnspendableUTXOs(unsafe.Pointer) error { return ErrNotBuilt }

func TakerSendToAddress(unsafe.Pointer, []byte) ([]byte, error) { return nil, ErrNotBuilt }

func TakerFetchOffers(unsafe.Pointer) ([]byte, error) { return nil, ErrNotBuilt }

func TakerIsOfferbookSyncing(unsafe.Pointer) bool { return false }

func TakerRunOfferSyncNow(unsafe.Pointer) error { return ErrNotBuilt }

func TakerDoCoinswap(unsafe.Pointer, []byte) ([]byte, error) { return nil, ErrNotBuilt }

func TakerSyncAndSave(unsafe.Pointer) error { return ErrNotBuilt }

func TakerBackup(unsafe.Pointer, []byte) error { return ErrNotBuilt }

func TakerRecoverFromSwap(unsafe.Pointer) error { return ErrNotBuilt }

func TakerWalletName(unsafe.Pointer) ([]byte, error) { return nil, ErrNotBuilt }

func SetupLogging([]byte) error { return ErrNotBuilt }

func FetchMempoolFees() ([]byte, error) { return nil, ErrNotBuilt }

func IsWalletEncrypted([]byte) (bool, error) { return false, ErrNotBuilt }

func RestoreWallet([]byte) error { return ErrNotBuilt }

func Version() string { return "" }

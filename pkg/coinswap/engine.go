package coinswap

import (
	"unsafe"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap/internal/backend"
)

// engine is the seam between the Taker and the native library. The only
// production implementation is nativeEngine; tests substitute fakes so the
// lifetime and marshaling rules can be exercised without linking the engine.
type engine interface {
	getBalances() ([]byte, error)
	nextExternalAddress(req []byte) ([]byte, error)
	nextInternalAddresses(req []byte) ([]byte, error)
	getTransactions(req []byte) ([]byte, error)
	listUTXOs() ([]byte, error)
	lockUnspendableUTXOs() error
	sendToAddress(req []byte) ([]byte, error)
	fetchOffers() ([]byte, error)
	isOfferbookSyncing() bool
	runOfferSyncNow() error
	doCoinswap(req []byte) ([]byte, error)
	syncAndSave() error
	backup(req []byte) error
	recoverFromSwap() error
	walletName() ([]byte, error)
	free()
}

// nativeEngine forwards every call to the cgo bindings against one
// exclusively-owned cswp_taker instance.
type nativeEngine struct {
	ptr unsafe.Pointer
}

func (e *nativeEngine) getBalances() ([]byte, error) { return backend.TakerGetBalances(e.ptr) }

func (e *nativeEngine) nextExternalAddress(req []byte) ([]byte, error) {
	return backend.TakerNextExternalAddress(e.ptr, req)
}

func (e *nativeEngine) nextInternalAddresses(req []byte) ([]byte, error) {
	return backend.TakerNextInternalAddresses(e.ptr, req)
}

func (e *nativeEngine) getTransactions(req []byte) ([]byte, error) {
	return backend.TakerGetTransactions(e.ptr, req)
}

func (e *nativeEngine) listUTXOs() ([]byte, error) { return backend.TakerListUTXOs(e.ptr) }

func (e *nativeEngine) lockUnspendableUTXOs() error { return backend.TakerLockUnspendableUTXOs(e.ptr) }

func (e *nativeEngine) sendToAddress(req []byte) ([]byte, error) {
	return backend.TakerSendToAddress(e.ptr, req)
}

func (e *nativeEngine) fetchOffers() ([]byte, error) { return backend.TakerFetchOffers(e.ptr) }

func (e *nativeEngine) isOfferbookSyncing() bool { return backend.TakerIsOfferbookSyncing(e.ptr) }

func (e *nativeEngine) runOfferSyncNow() error { return backend.TakerRunOfferSyncNow(e.ptr) }

func (e *nativeEngine) doCoinswap(req []byte) ([]byte, error) {
	return backend.TakerDoCoinswap(e.ptr, req)
}

func (e *nativeEngine) syncAndSave() error { return backend.TakerSyncAndSave(e.ptr) }

func (e *nativeEngine) backup(req []byte) error { return backend.TakerBackup(e.ptr, req) }

func (e *nativeEngine) recoverFromSwap() error { return backend.TakerRecoverFromSwap(e.ptr) }

func (e *nativeEngine) walletName() ([]byte, error) { return backend.TakerWalletName(e.ptr) }

func (e *nativeEngine) free() {
	backend.TakerFree(e.ptr)
	e.ptr = nil
}

//go:build cgo && !windows

package backend

/*
#cgo LDFLAGS: -lcoinswap_ffi
#cgo linux LDFLAGS: -lm -ldl -lpthread
#cgo CFLAGS: -I${SRCDIR}

#include <stdlib.h>
#include <string.h>
#include "coinswap_capi.h"
*/
import "C"

import (
	"unsafe"
)

// cmemToGoBytes converts a cswp_mem_t to a Go []byte and takes ownership of
// the C memory. The buffer is zeroed before freeing; wallet passwords and
// backup payloads travel through these buffers.
func cmemToGoBytes(mem C.cswp_mem_t) []byte {
	if mem.data == nil || mem.size <= 0 {
		return nil
	}
	out := C.GoBytes(unsafe.Pointer(mem.data), mem.size)
	C.memset(unsafe.Pointer(mem.data), 0, C.size_t(mem.size))
	C.free(unsafe.Pointer(mem.data))
	return out
}

// allocCmem copies Go bytes into C-allocated memory. Every request buffer is
// copied rather than pinned because engine calls can block for minutes and
// must not hold references into Go memory for that long. Pair with freeCmem.
func allocCmem(data []byte) C.cswp_mem_t {
	var mem C.cswp_mem_t
	if len(data) == 0 {
		return mem
	}
	mem.size = C.int(len(data))
	mem.data = (*C.uint8_t)(C.malloc(C.size_t(len(data))))
	if mem.data != nil {
		C.memcpy(unsafe.Pointer(mem.data), unsafe.Pointer(&data[0]), C.size_t(len(data)))
	}
	return mem
}

// freeCmem zeros and frees a buffer produced by allocCmem.
func freeCmem(mem C.cswp_mem_t) {
	if mem.data != nil && mem.size > 0 {
		C.memset(unsafe.Pointer(mem.data), 0, C.size_t(mem.size))
		C.free(unsafe.Pointer(mem.data))
	}
}

// nativeErr drains the engine's error buffer into a *NativeError.
func nativeErr(op string, rc C.int, errMem C.cswp_mem_t) error {
	msg := string(cmemToGoBytes(errMem))
	if msg == "" {
		msg = "engine reported no message"
	}
	return &NativeError{Op: op, Code: int(rc), Msg: msg}
}

// TakerInit constructs a native taker instance from a JSON-encoded init
// request. The returned pointer is exclusively owned by the caller and must
// be released with TakerFree exactly once.
func TakerInit(params []byte) (unsafe.Pointer, error) {
	req := allocCmem(params)
	defer freeCmem(req)

	var taker *C.cswp_taker
	var errMem C.cswp_mem_t
	rc := C.coinswap_taker_init(req, &taker, &errMem)
	if rc != 0 {
		return nil, nativeErr("taker_init", rc, errMem)
	}
	return unsafe.Pointer(taker), nil
}

// TakerFree releases a native taker instance. The pointer must not be used
// afterwards; liveness tracking lives in the public package.
func TakerFree(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	C.coinswap_taker_free((*C.cswp_taker)(ptr))
}

func TakerGetBalances(ptr unsafe.Pointer) ([]byte, error) {
	var out, errMem C.cswp_mem_t
	rc := C.coinswap_taker_get_balances((*C.cswp_taker)(ptr), &out, &errMem)
	if rc != 0 {
		return nil, nativeErr("get_balances", rc, errMem)
	}
	return cmemToGoBytes(out), nil
}

func TakerNextExternalAddress(ptr unsafe.Pointer, req []byte) ([]byte, error) {
	reqMem := allocCmem(req)
	defer freeCmem(reqMem)

	var out, errMem C.cswp_mem_t
	rc := C.coinswap_taker_next_external_address((*C.cswp_taker)(ptr), reqMem, &out, &errMem)
	if rc != 0 {
		return nil, nativeErr("next_external_address", rc, errMem)
	}
	return cmemToGoBytes(out), nil
}

// TakerNextInternalAddresses derives a batch of change addresses. The request
// carries the count and script type; the response is a JSON list.
func TakerNextInternalAddresses(ptr unsafe.Pointer, req []byte) ([]byte, error) {
	reqMem := allocCmem(req)
	defer freeCmem(reqMem)

	var out, errMem C.cswp_mem_t
	rc := C.coinswap_taker_next_internal_addresses((*C.cswp_taker)(ptr), reqMem, &out, &errMem)
	if rc != 0 {
		return nil, nativeErr("next_internal_addresses", rc, errMem)
	}
	return cmemToGoBytes(out), nil
}

func TakerGetTransactions(ptr unsafe.Pointer, req []byte) ([]byte, error) {
	reqMem := allocCmem(req)
	defer freeCmem(reqMem)

	var out, errMem C.cswp_mem_t
	rc := C.coinswap_taker_get_transactions((*C.cswp_taker)(ptr), reqMem, &out, &errMem)
	if rc != 0 {
		return nil, nativeErr("get_transactions", rc, errMem)
	}
	return cmemToGoBytes(out), nil
}

func TakerListUTXOs(ptr unsafe.Pointer) ([]byte, error) {
	var out, errMem C.cswp_mem_t
	rc := C.coinswap_taker_list_utxo_spend_info((*C.cswp_taker)(ptr), &out, &errMem)
	if rc != 0 {
		return nil, nativeErr("list_all_utxo_spend_info", rc, errMem)
	}
	return cmemToGoBytes(out), nil
}

// TakerLockUnspendableUTXOs marks swap-reserved and contract outputs as
// locked in the node's wallet so ordinary spends cannot pick them.
func TakerLockUnspendableUTXOs(ptr unsafe.Pointer) error {
	var errMem C.cswp_mem_t
	rc := C.coinswap_taker_lock_unspendable_utxos((*C.cswp_taker)(ptr), &errMem)
	if rc != 0 {
		return nativeErr("lock_unspendable_utxos", rc, errMem)
	}
	return nil
}

func TakerSendToAddress(ptr unsafe.Pointer, req []byte) ([]byte, error) {
	reqMem := allocCmem(req)
	defer freeCmem(reqMem)

	var out, errMem C.cswp_mem_t
	rc := C.coinswap_taker_send_to_address((*C.cswp_taker)(ptr), reqMem, &out, &errMem)
	if rc != 0 {
		return nil, nativeErr("send_to_address", rc, errMem)
	}
	return cmemToGoBytes(out), nil
}

func TakerFetchOffers(ptr unsafe.Pointer) ([]byte, error) {
	var out, errMem C.cswp_mem_t
	rc := C.coinswap_taker_fetch_offers((*C.cswp_taker)(ptr), &out, &errMem)
	if rc != 0 {
		return nil, nativeErr("fetch_offers", rc, errMem)
	}
	return cmemToGoBytes(out), nil
}

// TakerIsOfferbookSyncing reads the engine's sync flag. The native call is a
// single atomic load; it never blocks and has no failure path.
func TakerIsOfferbookSyncing(ptr unsafe.Pointer) bool {
	return C.coinswap_taker_is_offerbook_syncing((*C.cswp_taker)(ptr)) != 0
}

// TakerRunOfferSyncNow nudges the engine's background sync thread and
// returns immediately. The outcome of the triggered sync is only observable
// through later fetch_offers calls.
func TakerRunOfferSyncNow(ptr unsafe.Pointer) error {
	var errMem C.cswp_mem_t
	rc := C.coinswap_taker_run_offer_sync_now((*C.cswp_taker)(ptr), &errMem)
	if rc != 0 {
		return nativeErr("run_offer_sync_now", rc, errMem)
	}
	return nil
}

// TakerDoCoinswap executes a full swap. An empty result buffer with a zero
// return code means no eligible makers were found, which is not an error.
func TakerDoCoinswap(ptr unsafe.Pointer, req []byte) ([]byte, error) {
	reqMem := allocCmem(req)
	defer freeCmem(reqMem)

	var out, errMem C.cswp_mem_t
	rc := C.coinswap_taker_do_coinswap((*C.cswp_taker)(ptr), reqMem, &out, &errMem)
	if rc != 0 {
		return nil, nativeErr("do_coinswap", rc, errMem)
	}
	return cmemToGoBytes(out), nil
}

func TakerSyncAndSave(ptr unsafe.Pointer) error {
	var errMem C.cswp_mem_t
	rc := C.coinswap_taker_sync_and_save((*C.cswp_taker)(ptr), &errMem)
	if rc != 0 {
		return nativeErr("sync_and_save", rc, errMem)
	}
	return nil
}

func TakerBackup(ptr unsafe.Pointer, req []byte) error {
	reqMem := allocCmem(req)
	defer freeCmem(reqMem)

	var errMem C.cswp_mem_t
	rc := C.coinswap_taker_backup((*C.cswp_taker)(ptr), reqMem, &errMem)
	if rc != 0 {
		return nativeErr("backup", rc, errMem)
	}
	return nil
}

func TakerRecoverFromSwap(ptr unsafe.Pointer) error {
	var errMem C.cswp_mem_t
	rc := C.coinswap_taker_recover_from_swap((*C.cswp_taker)(ptr), &errMem)
	if rc != 0 {
		return nativeErr("recover_from_swap", rc, errMem)
	}
	return nil
}

func TakerWalletName(ptr unsafe.Pointer) ([]byte, error) {
	var out, errMem C.cswp_mem_t
	rc := C.coinswap_taker_wallet_name((*C.cswp_taker)(ptr), &out, &errMem)
	if rc != 0 {
		return nil, nativeErr("wallet_name", rc, errMem)
	}
	return cmemToGoBytes(out), nil
}

// SetupLogging configures the engine's process-wide file logger. The native
// library keeps exactly one logger; callers enforce init-once semantics.
func SetupLogging(req []byte) error {
	reqMem := allocCmem(req)
	defer freeCmem(reqMem)

	var errMem C.cswp_mem_t
	rc := C.coinswap_setup_logging(reqMem, &errMem)
	if rc != 0 {
		return nativeErr("setup_logging", rc, errMem)
	}
	return nil
}

// FetchMempoolFees queries public fee estimation APIs through the engine.
func FetchMempoolFees() ([]byte, error) {
	var out, errMem C.cswp_mem_t
	rc := C.coinswap_fetch_mempool_fees(&out, &errMem)
	if rc != 0 {
		return nil, nativeErr("fetch_mempool_fees", rc, errMem)
	}
	return cmemToGoBytes(out), nil
}

// IsWalletEncrypted inspects a wallet file without opening it.
func IsWalletEncrypted(req []byte) (bool, error) {
	reqMem := allocCmem(req)
	defer freeCmem(reqMem)

	var out C.int
	var errMem C.cswp_mem_t
	rc := C.coinswap_is_wallet_encrypted(reqMem, &out, &errMem)
	if rc != 0 {
		return false, nativeErr("is_wallet_encrypted", rc, errMem)
	}
	return out != 0, nil
}

// RestoreWallet recreates a wallet file from a backup archive.
func RestoreWallet(req []byte) error {
	reqMem := allocCmem(req)
	defer freeCmem(reqMem)

	var errMem C.cswp_mem_t
	rc := C.coinswap_restore_wallet(reqMem, &errMem)
	if rc != 0 {
		return nativeErr("restore_wallet", rc, errMem)
	}
	return nil
}

// Version returns the engine's version string, or empty if unavailable.
func Version() string {
	v := C.coinswap_version()
	if v == nil {
		return ""
	}
	return C.GoString(v)
}

package coinswap

import (
	"context"
	"runtime"
	"sync"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap/internal/backend"
	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap/logging"
)

// Taker is the handle to one running protocol-client instance: a wallet, its
// RPC connection, and the engine's background offerbook sync. It is the
// exclusive owner of the underlying native instance; no two Takers may point
// at the same wallet file.
//
// Lifecycle: Init -> Active -> Released. Release happens on Close or, as a
// backstop, when the garbage collector finalizes an unreachable handle. Every
// operation on a released handle fails with ErrTakerReleased; Released is
// terminal.
//
// Concurrency: all operations serialize on an internal mutex, so concurrent
// use from multiple goroutines is safe but queues. Close is safe to race with
// an in-flight call; it waits for the call to complete before the native
// instance is freed. Operations block the calling goroutine for the full
// duration of the underlying work, from milliseconds (balance query) to
// minutes (swap execution); there is no cancellation, so dispatch long calls
// to a worker goroutine if the caller must stay responsive.
type Taker struct {
	// mu serializes all blocking operations plus Close.
	mu sync.Mutex

	// syncMu guards only the non-blocking offerbook-sync primitives so they
	// are never queued behind a long-running call such as DoCoinswap.
	syncMu sync.Mutex

	eng      engine
	released bool
	log      logging.Logger
}

// Init constructs a taker instance. The returned handle must be released
// with Close; the finalizer only covers handles the caller lost track of.
func Init(opts InitOptions) (*Taker, error) {
	req, err := encodeInitRequest(opts)
	if err != nil {
		return nil, err
	}

	ptr, err := backend.TakerInit(req)
	if err != nil {
		return nil, remapError(err)
	}

	t := &Taker{eng: &nativeEngine{ptr: ptr}, log: logging.New(nil)}
	runtime.SetFinalizer(t, func(t *Taker) { _ = t.Close() })
	t.log.Debug(context.Background(), "taker initialized",
		"wallet", opts.WalletFileName, "zmq", opts.ZmqAddr)
	return t, nil
}

// Close releases the native instance. It is idempotent and safe to call
// while another goroutine is mid-operation; the release waits for that
// operation to finish so the engine never sees a freed instance.
func (t *Taker) Close() error {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.released {
		return nil
	}

	t.syncMu.Lock()
	t.released = true
	t.syncMu.Unlock()

	runtime.SetFinalizer(t, nil)
	t.eng.free()
	t.log.Debug(context.Background(), "taker released")
	return nil
}

// live must be called with mu held.
func (t *Taker) live() error {
	if t.released {
		return ErrTakerReleased
	}
	return nil
}

// GetBalances returns the wallet balance breakdown in satoshis.
func (t *Taker) GetBalances() (Balances, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.live(); err != nil {
		return Balances{}, err
	}
	raw, err := t.eng.getBalances()
	if err != nil {
		return Balances{}, remapError(err)
	}
	return decodeBalances(raw)
}

// NextExternalAddress derives the wallet's next receive address of the
// given script type.
func (t *Taker) NextExternalAddress(addrType AddressType) (string, error) {
	req, err := encodeAddressTypeRequest(addrType)
	if err != nil {
		return "", err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.live(); err != nil {
		return "", err
	}
	raw, err := t.eng.nextExternalAddress(req)
	if err != nil {
		return "", remapError(err)
	}
	return decodeAddress(raw)
}

// NextInternalAddresses derives count change addresses of the given script
// type without handing them out as receive addresses.
func (t *Taker) NextInternalAddresses(count uint32, addrType AddressType) ([]string, error) {
	req, err := encodeInternalAddressesRequest(count, addrType)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.live(); err != nil {
		return nil, err
	}
	raw, err := t.eng.nextInternalAddresses(req)
	if err != nil {
		return nil, remapError(err)
	}
	return decodeAddressList(raw)
}

// GetTransactions lists wallet transactions, newest first. A nil count
// returns everything; a nil skip starts at the newest.
func (t *Taker) GetTransactions(count, skip *uint32) ([]WalletTransaction, error) {
	req, err := encodeTransactionsRequest(count, skip)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.live(); err != nil {
		return nil, err
	}
	raw, err := t.eng.getTransactions(req)
	if err != nil {
		return nil, remapError(err)
	}
	return decodeTransactions(raw)
}

// ListUTXOs returns every wallet UTXO together with its spend information.
func (t *Taker) ListUTXOs() ([]UTXOInfo, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.live(); err != nil {
		return nil, err
	}
	raw, err := t.eng.listUTXOs()
	if err != nil {
		return nil, remapError(err)
	}
	return decodeUTXOInfos(raw)
}

// LockUnspendableUTXOs marks contract and swap-reserved outputs as locked in
// the node's wallet so they cannot be picked up by ordinary spends.
func (t *Taker) LockUnspendableUTXOs() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.live(); err != nil {
		return err
	}
	return remapError(t.eng.lockUnspendableUTXOs())
}

// SendToAddress builds, signs and broadcasts a payment of amount satoshis.
// feeRate is sat/vB; nil lets the wallet estimate. A non-nil outpoints slice
// restricts coin selection to those inputs.
func (t *Taker) SendToAddress(address string, amount int64, feeRate *float64, outpoints []OutPoint) (Txid, error) {
	req, err := encodeSendRequest(address, amount, feeRate, outpoints)
	if err != nil {
		return "", err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.live(); err != nil {
		return "", err
	}
	raw, err := t.eng.sendToAddress(req)
	if err != nil {
		return "", remapError(err)
	}
	return decodeTxidResult(raw)
}

// FetchOffers returns the engine's current offerbook, refreshing it from
// the maker network first. This is a blocking network call.
func (t *Taker) FetchOffers() (OfferBook, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.live(); err != nil {
		return OfferBook{}, err
	}
	raw, err := t.eng.fetchOffers()
	if err != nil {
		return OfferBook{}, remapError(err)
	}
	return decodeOfferBook(raw)
}

// AllMakerAddresses fetches the offerbook and returns just the maker
// addresses, probed or not.
func (t *Taker) AllMakerAddresses() ([]string, error) {
	book, err := t.FetchOffers()
	if err != nil {
		return nil, err
	}
	addrs := make([]string, len(book.Makers))
	for i, m := range book.Makers {
		addrs[i] = m.Address
	}
	return addrs, nil
}

// IsOfferbookSyncing reports whether the engine's background offerbook sync
// is currently running. It never blocks behind in-flight operations and
// never fails; on a released handle it simply reports false.
func (t *Taker) IsOfferbookSyncing() bool {
	t.syncMu.Lock()
	defer t.syncMu.Unlock()
	if t.released {
		return false
	}
	return t.eng.isOfferbookSyncing()
}

// RunOfferSyncNow asks the background sync thread to refresh the offerbook
// and returns immediately. Whether the triggered sync succeeded is only
// observable through later FetchOffers calls.
func (t *Taker) RunOfferSyncNow() error {
	t.syncMu.Lock()
	defer t.syncMu.Unlock()
	if t.released {
		return ErrTakerReleased
	}
	return remapError(t.eng.runOfferSyncNow())
}

// DoCoinswap executes a full coinswap and blocks until it completes or
// fails, typically 30-120 seconds. A nil report with a nil error means no
// eligible makers were available. Once started the swap runs to completion;
// there is no cancellation.
func (t *Taker) DoCoinswap(params SwapParams) (*SwapReport, error) {
	req, err := encodeSwapRequest(params)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.live(); err != nil {
		return nil, err
	}
	raw, err := t.eng.doCoinswap(req)
	if err != nil {
		return nil, remapError(err)
	}
	if len(raw) == 0 {
		// No eligible makers. Not an error by contract.
		return nil, nil
	}
	return decodeSwapReport(raw)
}

// SyncAndSave rescans the wallet against the node and persists the result.
func (t *Taker) SyncAndSave() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.live(); err != nil {
		return err
	}
	return remapError(t.eng.syncAndSave())
}

// Backup writes an encrypted copy of the wallet file to destination.
func (t *Taker) Backup(destination string, password *string) error {
	req, err := encodeBackupRequest(destination, password)
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.live(); err != nil {
		return err
	}
	return remapError(t.eng.backup(req))
}

// RecoverFromSwap sweeps back funds stuck in contract outputs after an
// aborted swap.
func (t *Taker) RecoverFromSwap() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.live(); err != nil {
		return err
	}
	return remapError(t.eng.recoverFromSwap())
}

// WalletName returns the name of the wallet this handle owns.
func (t *Taker) WalletName() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.live(); err != nil {
		return "", err
	}
	raw, err := t.eng.walletName()
	if err != nil {
		return "", remapError(err)
	}
	return decodeWalletName(raw)
}

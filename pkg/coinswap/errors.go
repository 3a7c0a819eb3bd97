package coinswap

import (
	"errors"
	"fmt"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap/internal/backend"
)

// Category identifies which part of the stack a failure originated in. The
// set is closed: the engine reports exactly General, Wallet, Network,
// Protocol and IO, and the binding layer adds Encoding for failures that
// happen while marshaling values across the boundary. Values never collapse
// into one another and no new categories are invented here.
type Category int

const (
	// CategoryGeneral covers engine failures with no more specific home.
	CategoryGeneral Category = iota + 1
	// CategoryWallet covers wallet state, persistence and signing failures.
	CategoryWallet
	// CategoryNetwork covers RPC, peer and Tor connectivity failures.
	CategoryNetwork
	// CategoryProtocol covers coinswap protocol violations by counterparties.
	CategoryProtocol
	// CategoryIO covers engine-side filesystem failures.
	CategoryIO
	// CategoryEncoding marks failures inside the binding layer itself: a
	// value that could not be encoded or decoded at the boundary. It is
	// never used for errors the engine reported.
	CategoryEncoding
)

func (c Category) String() string {
	switch c {
	case CategoryGeneral:
		return "general"
	case CategoryWallet:
		return "wallet"
	case CategoryNetwork:
		return "network"
	case CategoryProtocol:
		return "protocol"
	case CategoryIO:
		return "io"
	case CategoryEncoding:
		return "encoding"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Error is the typed failure value returned by every fallible operation.
// Category and message are carried losslessly from the engine; a call
// returns either a complete result or a complete *Error, never both.
type Error struct {
	Category Category
	Msg      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("coinswap: %s error: %s", e.Category, e.Msg)
}

// IsCategory reports whether err is a boundary *Error of the given category.
func IsCategory(err error, c Category) bool {
	var be *Error
	return errors.As(err, &be) && be.Category == c
}

// ErrTakerReleased is returned by any operation invoked on a released
// handle. It is deliberately distinct from every engine category so callers
// can tell boundary misuse apart from protocol failure.
var ErrTakerReleased = errors.New("coinswap: taker has been released")

// ErrNotBuilt reports that the binary was built without the native engine
// (CGO disabled or an unsupported platform). It aliases the backend sentinel
// so errors.Is works at every layer.
var ErrNotBuilt = backend.ErrNotBuilt

// remapError projects backend-layer failures onto the public taxonomy.
// Engine categories map one-to-one; nothing is retried or recovered here.
func remapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, backend.ErrNotBuilt) {
		return ErrNotBuilt
	}
	var ne *backend.NativeError
	if errors.As(err, &ne) {
		cat, ok := categoryFromCode(ne.Code)
		if !ok {
			// An unrecognized code is a boundary bug, not an engine
			// failure; never fall back to a guessed category.
			return encodingErrf("unknown engine error code %d: %s", ne.Code, ne.Msg)
		}
		return &Error{Category: cat, Msg: ne.Msg}
	}
	return err
}

func categoryFromCode(code int) (Category, bool) {
	switch code {
	case backend.CodeGeneral:
		return CategoryGeneral, true
	case backend.CodeWallet:
		return CategoryWallet, true
	case backend.CodeNetwork:
		return CategoryNetwork, true
	case backend.CodeProtocol:
		return CategoryProtocol, true
	case backend.CodeIO:
		return CategoryIO, true
	default:
		return 0, false
	}
}

// encodingErr wraps a Go-side marshaling failure. These must never be
// misreported as engine categories.
func encodingErr(op string, err error) error {
	return &Error{Category: CategoryEncoding, Msg: fmt.Sprintf("%s: %v", op, err)}
}

func encodingErrf(format string, args ...any) error {
	return &Error{Category: CategoryEncoding, Msg: fmt.Sprintf(format, args...)}
}

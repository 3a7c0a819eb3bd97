package backend

import (
	"errors"
	"fmt"
)

// Engine error category codes. These match the return codes of the
// coinswap_* C entry points and are stable across engine releases; the
// public package maps them onto its error taxonomy.
const (
	CodeOK       = 0
	CodeGeneral  = 1
	CodeWallet   = 2
	CodeNetwork  = 3
	CodeProtocol = 4
	CodeIO       = 5
)

// NativeError is a structured failure reported by the engine: a category
// code plus the human-readable message the native side produced. It is never
// synthesized for failures that originate on the Go side of the boundary.
type NativeError struct {
	Op   string
	Code int
	Msg  string
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("%s: engine error (code %d): %s", e.Op, e.Code, e.Msg)
}

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary (Windows build or CGO disabled).
var ErrNotBuilt = errors.New("coinswap/internal/backend: native bindings not built")

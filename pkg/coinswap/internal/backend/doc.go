// Package backend contains the cgo bindings to the native coinswap taker
// library (libcoinswap_ffi). It is the only package that touches C memory;
// everything above it works with Go values and JSON documents.
//
// Values cross the boundary as JSON encoded into cswp_mem_t byte buffers that
// the native side allocates and this package copies and frees. Every fallible
// native call reports a return code from the engine's closed error-category
// set together with a message buffer; the pair is surfaced as *NativeError.
//
// Build matrix: the real bindings require cgo on a non-Windows platform. All
// other configurations get stubs that return ErrNotBuilt so that pure-Go
// builds and tests still compile.
package backend

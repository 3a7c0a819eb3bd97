// Package coinswap exposes the native coinswap taker engine to Go. The
// engine owns the protocol state machine, wallet persistence and network
// connections; this package is the binding boundary on top of it: value
// marshaling, error projection, handle lifetime and call dispatch.
//
// A Taker handle is obtained with Init and must be released with Close.
// Every operation is synchronous and returns either a complete value or a
// typed *Error carrying one of the engine's closed failure categories.
// Monetary amounts are always int64 satoshis; floating point never carries
// money across this boundary.
package coinswap

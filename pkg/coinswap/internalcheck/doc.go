// Package internalcheck holds build-time policy checks for the binding.
//
// The tests here load pkg/coinswap with go/packages and enforce invariants
// that ordinary unit tests cannot see: monetary amounts stay integers, and
// credentials never reach a format string. It is not intended for external
// use and the API may change without notice.
package internalcheck

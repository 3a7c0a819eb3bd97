// Package commands implements the coinswap-cli subcommands. Each command
// opens a taker against the configured wallet, runs one operation, prints the
// result and releases the handle.
package commands

package main

import (
	"os"

	"github.com/citadel-tech/coinswap-ffi/cmd/coinswap-cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

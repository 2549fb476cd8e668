package main

import (
	"os"

	"github.com/obaidrock78/hunter-io-client/cmd/hunter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

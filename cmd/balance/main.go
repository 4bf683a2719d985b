package main

import (
	"os"

	"github.com/lixenwraith/fruit-balance/cmd/balance/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

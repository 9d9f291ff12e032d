package main

import (
	"os"

	"github.com/strataframe/strata/cmd/strata/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

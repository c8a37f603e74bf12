package main

import (
	"os"

	"github.com/jask/revenda/cmd/revenda/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/sibyl-dev/sibyl/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"authboot/cmd/authboot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

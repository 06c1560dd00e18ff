package main

import (
	"os"

	"sealpost/cmd/sealpost/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

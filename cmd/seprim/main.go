package main

import (
	"os"

	"seprim/cmd/seprim/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

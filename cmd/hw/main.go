package main

import (
	"os"

	"github.com/ovsov/healthwise-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

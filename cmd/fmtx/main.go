package main

import (
	"os"

	"github.com/msto63/formatting/cmd/fmtx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

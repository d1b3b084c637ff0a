package main

import (
	"os"

	"github.com/storekit-labs/martgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/unboxed-hq/hazwaste/cmd/hazwaste/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/cwbudde/go-gone/cmd/gone/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

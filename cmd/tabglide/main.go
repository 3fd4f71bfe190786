package main

import (
	"os"

	"github.com/tabglide/tabglide/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/ParkerLab/mka/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/LerianStudio/lib-license/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

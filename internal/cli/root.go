// Package cli implements the licensectl CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var formatFlag string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "licensectl",
	Short: "Query the compiled-in SPDX license catalog",
	Long:  "licensectl looks up SPDX licenses and exceptions from the catalog compiled into the binary: names, texts, headers, and curated usage facts.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: json or text")
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

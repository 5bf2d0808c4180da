package cli

import (
	"fmt"
	"os"

	"github.com/LerianStudio/lib-license/license/exceptions"
	"github.com/LerianStudio/lib-license/license/licenses"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "check <id>...",
		Short: "Check whether identifiers exist in the catalog",
		Long:  "Check resolves each identifier against the license and exception catalogs and prints its canonical form. Exits non-zero when any identifier is unknown.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runCheck,
	}

	RootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	failed := false

	for _, id := range args {
		if lic, err := licenses.FromID(id); err == nil {
			fmt.Printf("%s: license %s\n", id, lic.ID())

			continue
		}

		if exc, err := exceptions.FromID(id); err == nil {
			fmt.Printf("%s: exception %s\n", id, exc.ID())

			continue
		}

		fmt.Printf("%s: unknown\n", id)

		failed = true
	}

	if failed {
		os.Exit(1)
	}
}

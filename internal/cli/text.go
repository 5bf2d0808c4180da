package cli

import (
	"fmt"

	"github.com/LerianStudio/lib-license/license/exceptions"
	"github.com/LerianStudio/lib-license/license/licenses"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "text <id>",
		Short: "Print the full text of a license or exception",
		Args:  cobra.ExactArgs(1),
		Run:   runText,
	}

	cmd.Flags().Bool("header", false, "Print the standard license header instead of the full text")

	RootCmd.AddCommand(cmd)
}

func runText(cmd *cobra.Command, args []string) {
	id := args[0]
	wantHeader, _ := cmd.Flags().GetBool("header")

	if lic, err := licenses.FromID(id); err == nil {
		if wantHeader {
			header, ok := lic.Header()
			if !ok {
				exitErr("text", fmt.Errorf("license %q has no standard header", lic.ID()))
			}

			fmt.Print(header)

			return
		}

		fmt.Print(lic.Text())

		return
	}

	exc, err := exceptions.FromID(id)
	if err != nil {
		exitErr("text", err)
	}

	if wantHeader {
		exitErr("text", fmt.Errorf("exception %q has no standard header", exc.ID()))
	}

	fmt.Print(exc.Text())
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-license/license/exceptions"
	"github.com/LerianStudio/lib-license/license/licenses"
	"github.com/spf13/cobra"
)

type listEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	OSIApproved bool   `json:"osiApproved,omitempty"`
	FSFLibre    bool   `json:"fsfLibre,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog licenses",
		Run:   runList,
	}

	cmd.Flags().Bool("exceptions", false, "List license exceptions instead of licenses")
	cmd.Flags().Bool("deprecated", false, "Only list deprecated identifiers")
	cmd.Flags().Bool("osi", false, "Only list OSI-approved licenses (not valid with --exceptions)")

	RootCmd.AddCommand(cmd)
}

func listEntries(listExceptions, onlyDeprecated, onlyOSI bool) ([]listEntry, error) {
	if listExceptions && onlyOSI {
		return nil, errors.New("--osi applies to licenses and cannot be combined with --exceptions")
	}

	var entries []listEntry

	if listExceptions {
		for exc := range exceptions.All() {
			if onlyDeprecated && !exc.IsDeprecated() {
				continue
			}

			entries = append(entries, listEntry{
				ID:         exc.ID(),
				Name:       exc.Name(),
				Deprecated: exc.IsDeprecated(),
			})
		}

		return entries, nil
	}

	for lic := range licenses.All() {
		if onlyDeprecated && !lic.IsDeprecated() {
			continue
		}

		if onlyOSI && !lic.IsOSIApproved() {
			continue
		}

		entries = append(entries, listEntry{
			ID:          lic.ID(),
			Name:        lic.Name(),
			OSIApproved: lic.IsOSIApproved(),
			FSFLibre:    lic.IsFSFLibre(),
			Deprecated:  lic.IsDeprecated(),
		})
	}

	return entries, nil
}

func runList(cmd *cobra.Command, args []string) {
	listExceptions, _ := cmd.Flags().GetBool("exceptions")
	onlyDeprecated, _ := cmd.Flags().GetBool("deprecated")
	onlyOSI, _ := cmd.Flags().GetBool("osi")

	entries, err := listEntries(listExceptions, onlyDeprecated, onlyOSI)
	if err != nil {
		exitErr("list", err)
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(entries, "", "  ")
		fmt.Println(string(b))

		return
	}

	for _, e := range entries {
		marker := ""
		if e.Deprecated {
			marker = " (deprecated)"
		}

		fmt.Printf("%-28s %s%s\n", e.ID, e.Name, marker)
	}
}

// licensegen regenerates the compiled-in SPDX catalogs from the
// license-list-data JSON dumps published by the SPDX workgroup.
//
// It reads the per-license detail files and the exceptions file set, filters
// them through a curated identifier list, and emits the generated catalog
// sources plus the embedded text assets.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:   "licensegen",
		Short: "Regenerate the compiled-in SPDX catalogs",
		RunE:  run,
	}

	cmd.Flags().String("details", "", "Directory with SPDX per-license detail JSON files (required)")
	cmd.Flags().String("exceptions", "", "Directory with SPDX exception JSON files (required)")
	cmd.Flags().String("licenses-out", "license/licenses", "Output directory for the license catalog package")
	cmd.Flags().String("exceptions-out", "license/exceptions", "Output directory for the exception catalog package")
	cmd.Flags().String("license-ids", "", "File listing license ids to include, one per line (required)")
	cmd.Flags().String("exception-ids", "", "File listing exception ids to include, one per line (required)")

	for _, flag := range []string{"details", "exceptions", "license-ids", "exception-ids"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "licensegen: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	detailsDir, _ := cmd.Flags().GetString("details")
	exceptionsDir, _ := cmd.Flags().GetString("exceptions")
	licensesOut, _ := cmd.Flags().GetString("licenses-out")
	exceptionsOut, _ := cmd.Flags().GetString("exceptions-out")
	licenseIDsPath, _ := cmd.Flags().GetString("license-ids")
	exceptionIDsPath, _ := cmd.Flags().GetString("exception-ids")

	licenseIDs, err := readIDList(licenseIDsPath)
	if err != nil {
		return fmt.Errorf("read license id list: %w", err)
	}

	exceptionIDs, err := readIDList(exceptionIDsPath)
	if err != nil {
		return fmt.Errorf("read exception id list: %w", err)
	}

	licenseSet, err := loadLicenses(detailsDir, licenseIDs)
	if err != nil {
		return fmt.Errorf("load license details: %w", err)
	}

	exceptionSet, err := loadExceptions(exceptionsDir, exceptionIDs)
	if err != nil {
		return fmt.Errorf("load exception details: %w", err)
	}

	if err := emitLicenses(licensesOut, licenseSet); err != nil {
		return fmt.Errorf("emit license catalog: %w", err)
	}

	if err := emitExceptions(exceptionsOut, exceptionSet); err != nil {
		return fmt.Errorf("emit exception catalog: %w", err)
	}

	fmt.Printf("generated %d licenses, %d exceptions\n", len(licenseSet), len(exceptionSet))

	return nil
}

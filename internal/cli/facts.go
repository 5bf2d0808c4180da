package cli

import (
	"encoding/json"
	"fmt"

	"github.com/LerianStudio/lib-license/license"
	"github.com/LerianStudio/lib-license/license/licenses"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "facts <id>",
		Short: "Print the curated permission, condition, and limitation facts of a license",
		Args:  cobra.ExactArgs(1),
		Run:   runFacts,
	}

	RootCmd.AddCommand(cmd)
}

func runFacts(cmd *cobra.Command, args []string) {
	id := args[0]

	ext, ok := licenses.FromIDExt(id)
	if !ok {
		if _, err := licenses.FromID(id); err != nil {
			exitErr("facts", err)
		}

		exitErr("facts", fmt.Errorf("license %q has no curated facts", id))
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(factsJSON(ext), "", "  ")
		fmt.Println(string(b))

		return
	}

	fmt.Printf("%s (%s)\n\n", ext.ID(), ext.Name())
	fmt.Println("Permissions:")
	fmt.Print(ext.Permissions().String())
	fmt.Println("\nConditions:")
	fmt.Print(ext.Conditions().String())
	fmt.Println("\nLimitations:")
	fmt.Print(ext.Limitations().String())
}

func factsJSON(ext license.LicenseExt) map[string]any {
	perms := ext.Permissions()
	conds := ext.Conditions()
	limits := ext.Limitations()

	return map[string]any{
		"id": ext.ID(),
		"permissions": map[string]bool{
			"commercialUse": perms.CommercialUse,
			"distribution":  perms.Distribution,
			"modification":  perms.Modification,
			"patentRights":  perms.PatentRights,
			"privateUse":    perms.PrivateUse,
		},
		"conditions": map[string]bool{
			"discloseSources":           conds.DiscloseSources,
			"documentChanges":           conds.DocumentChanges,
			"licenseAndCopyrightNotice": conds.LicenseAndCopyrightNotice,
			"networkUseIsDistribution":  conds.NetworkUseIsDistribution,
			"sameLicense":               conds.SameLicense,
		},
		"limitations": map[string]bool{
			"noLiability":       limits.NoLiability,
			"noTrademarkRights": limits.NoTrademarkRights,
			"noWarranty":        limits.NoWarranty,
			"noPatentRights":    limits.NoPatentRights,
		},
	}
}

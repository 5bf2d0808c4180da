package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/LerianStudio/lib-license/license"
	"github.com/LerianStudio/lib-license/license/exceptions"
	"github.com/LerianStudio/lib-license/license/licenses"
	"github.com/spf13/cobra"
)

type showPayload struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	OSIApproved bool     `json:"osiApproved,omitempty"`
	FSFLibre    bool     `json:"fsfLibre,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
	HasHeader   bool     `json:"hasHeader,omitempty"`
	HasFacts    bool     `json:"hasFacts,omitempty"`
	Comments    string   `json:"comments,omitempty"`
	SeeAlso     []string `json:"seeAlso,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show catalog metadata for an SPDX identifier",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	id := args[0]

	var payload showPayload

	if lic, err := licenses.FromID(id); err == nil {
		payload = showPayload{
			ID:          lic.ID(),
			Name:        lic.Name(),
			OSIApproved: lic.IsOSIApproved(),
			FSFLibre:    lic.IsFSFLibre(),
			Deprecated:  lic.IsDeprecated(),
			SeeAlso:     lic.SeeAlso(),
		}

		_, payload.HasHeader = lic.Header()
		_, payload.HasFacts = lic.(license.LicenseExt)

		if comments, ok := lic.Comments(); ok {
			payload.Comments = comments
		}
	} else if exc, excErr := exceptions.FromID(id); excErr == nil {
		payload = showPayload{
			ID:         exc.ID(),
			Name:       exc.Name(),
			Deprecated: exc.IsDeprecated(),
			SeeAlso:    exc.SeeAlso(),
		}

		if comments, ok := exc.Comments(); ok {
			payload.Comments = comments
		}
	} else {
		exitErr("show", err)
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(payload, "", "  ")
		fmt.Println(string(b))

		return
	}

	fmt.Printf("id:           %s\n", payload.ID)
	fmt.Printf("name:         %s\n", payload.Name)
	fmt.Printf("osi approved: %t\n", payload.OSIApproved)
	fmt.Printf("fsf libre:    %t\n", payload.FSFLibre)
	fmt.Printf("deprecated:   %t\n", payload.Deprecated)
	fmt.Printf("has header:   %t\n", payload.HasHeader)
	fmt.Printf("has facts:    %t\n", payload.HasFacts)

	if payload.Comments != "" {
		fmt.Printf("comments:     %s\n", payload.Comments)
	}

	if len(payload.SeeAlso) > 0 {
		fmt.Printf("see also:     %s\n", strings.Join(payload.SeeAlso, ", "))
	}
}

//go:build unit

package license

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissions_StringRendersGrantedFactsOnly(t *testing.T) {
	t.Parallel()

	perms := Permissions{
		CommercialUse: true,
		Distribution:  true,
		Modification:  true,
		PrivateUse:    true,
	}

	rendered := perms.String()

	assert.Equal(t,
		"- May be used for commercial purposes.\n"+
			"- May be distributed.\n"+
			"- May be modified.\n"+
			"- May be used for private purposes.\n",
		rendered)
	assert.NotContains(t, rendered, "patent")
}

func TestPermissions_StringEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Permissions{}.String())
}

func TestConditions_StringDeclarationOrder(t *testing.T) {
	t.Parallel()

	conds := Conditions{
		DiscloseSources:           true,
		DocumentChanges:           true,
		LicenseAndCopyrightNotice: true,
		NetworkUseIsDistribution:  true,
		SameLicense:               true,
	}

	lines := strings.Split(strings.TrimRight(conds.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, "- Source code must be made available when the software is distributed.", lines[0])
	assert.Equal(t, "- Modifications must be released under the same license.", lines[4])
}

func TestLimitations_String(t *testing.T) {
	t.Parallel()

	limits := Limitations{NoLiability: true, NoWarranty: true}

	rendered := limits.String()
	assert.Contains(t, rendered, "- Includes a limitation of liability.\n")
	assert.Contains(t, rendered, "- Does not provide any warranty.\n")
	assert.NotContains(t, rendered, "trademark")
}

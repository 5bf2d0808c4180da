package license

import "strings"

// LicenseExt extends License with curated permission, condition, and
// limitation facts.
//
// Only entries whose facts have been explicitly curated implement it; the
// absence of the extension means "not tracked", which is distinct from every
// fact being false. Discover it with a type assertion on a License handle, or
// through licenses.FromIDExt.
type LicenseExt interface {
	License

	// Permissions returns what the license allows.
	Permissions() Permissions

	// Conditions returns what the license requires.
	Conditions() Conditions

	// Limitations returns what the license declines to grant.
	Limitations() Limitations
}

// Permissions holds the rights a license grants. Each fact is independent.
type Permissions struct {
	// CommercialUse: may be used for commercial purposes.
	CommercialUse bool
	// Distribution: may be distributed.
	Distribution bool
	// Modification: may be modified.
	Modification bool
	// PatentRights: provides an express grant of patent rights from
	// contributors.
	PatentRights bool
	// PrivateUse: may be used for private purposes.
	PrivateUse bool
}

// String renders the granted permissions as explanatory bullet lines, one per
// line, in declaration order. Facts that are false produce no output.
func (p Permissions) String() string {
	var b strings.Builder

	if p.CommercialUse {
		b.WriteString("- May be used for commercial purposes.\n")
	}

	if p.Distribution {
		b.WriteString("- May be distributed.\n")
	}

	if p.Modification {
		b.WriteString("- May be modified.\n")
	}

	if p.PatentRights {
		b.WriteString("- Provides an express grant of patent rights from contributors.\n")
	}

	if p.PrivateUse {
		b.WriteString("- May be used for private purposes.\n")
	}

	return b.String()
}

// Conditions holds the obligations a license imposes.
type Conditions struct {
	// DiscloseSources: source code must be made available when the software
	// is distributed.
	DiscloseSources bool
	// DocumentChanges: changes made to the code must be documented.
	DocumentChanges bool
	// LicenseAndCopyrightNotice: the license and copyright notice must be
	// included with the software.
	LicenseAndCopyrightNotice bool
	// NetworkUseIsDistribution: users who interact with the software via
	// network are given the right to receive a copy of the source code.
	NetworkUseIsDistribution bool
	// SameLicense: modifications must be released under the same license.
	SameLicense bool
}

// String renders the imposed conditions as explanatory bullet lines.
func (c Conditions) String() string {
	var b strings.Builder

	if c.DiscloseSources {
		b.WriteString("- Source code must be made available when the software is distributed.\n")
	}

	if c.DocumentChanges {
		b.WriteString("- Changes made to the code must be documented.\n")
	}

	if c.LicenseAndCopyrightNotice {
		b.WriteString("- The license and copyright notice must be included with the software.\n")
	}

	if c.NetworkUseIsDistribution {
		b.WriteString("- Users who interact with the software via network are given the right to receive a copy of the source code.\n")
	}

	if c.SameLicense {
		b.WriteString("- Modifications must be released under the same license.\n")
	}

	return b.String()
}

// Limitations holds what a license explicitly does not provide.
type Limitations struct {
	// NoLiability: includes a limitation of liability.
	NoLiability bool
	// NoTrademarkRights: does not grant trademark rights.
	NoTrademarkRights bool
	// NoWarranty: does not provide any warranty.
	NoWarranty bool
	// NoPatentRights: does not provide any rights in the patents of
	// contributors.
	NoPatentRights bool
}

// String renders the limitations as explanatory bullet lines.
func (l Limitations) String() string {
	var b strings.Builder

	if l.NoLiability {
		b.WriteString("- Includes a limitation of liability.\n")
	}

	if l.NoTrademarkRights {
		b.WriteString("- Does not grant trademark rights.\n")
	}

	if l.NoWarranty {
		b.WriteString("- Does not provide any warranty.\n")
	}

	if l.NoPatentRights {
		b.WriteString("- Does not provide any rights in the patents of contributors.\n")
	}

	return b.String()
}

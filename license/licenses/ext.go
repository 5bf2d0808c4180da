package licenses

import "github.com/LerianStudio/lib-license/license"

// Curated permission, condition, and limitation facts.
//
// Only the entries below carry facts; every other license resolves without
// the license.LicenseExt capability. Facts are curated per identifier from
// the published summaries of each license, never derived from the text.

var permissive = license.Permissions{
	CommercialUse: true,
	Distribution:  true,
	Modification:  true,
	PrivateUse:    true,
}

var permissiveWithPatent = license.Permissions{
	CommercialUse: true,
	Distribution:  true,
	Modification:  true,
	PatentRights:  true,
	PrivateUse:    true,
}

func (AFL_3_0) Permissions() license.Permissions { return permissiveWithPatent }
func (AFL_3_0) Conditions() license.Conditions {
	return license.Conditions{
		DocumentChanges:           true,
		LicenseAndCopyrightNotice: true,
	}
}
func (AFL_3_0) Limitations() license.Limitations {
	return license.Limitations{
		NoLiability:       true,
		NoTrademarkRights: true,
		NoWarranty:        true,
	}
}

func (AGPL_3_0_Only) Permissions() license.Permissions { return permissiveWithPatent }
func (AGPL_3_0_Only) Conditions() license.Conditions {
	return license.Conditions{
		DiscloseSources:           true,
		DocumentChanges:           true,
		LicenseAndCopyrightNotice: true,
		NetworkUseIsDistribution:  true,
		SameLicense:               true,
	}
}
func (AGPL_3_0_Only) Limitations() license.Limitations {
	return license.Limitations{
		NoLiability: true,
		NoWarranty:  true,
	}
}

func (Apache_2_0) Permissions() license.Permissions { return permissiveWithPatent }
func (Apache_2_0) Conditions() license.Conditions {
	return license.Conditions{
		DocumentChanges:           true,
		LicenseAndCopyrightNotice: true,
	}
}
func (Apache_2_0) Limitations() license.Limitations {
	return license.Limitations{
		NoLiability:       true,
		NoTrademarkRights: true,
		NoWarranty:        true,
	}
}

func (BSD_0) Permissions() license.Permissions { return permissive }
func (BSD_0) Conditions() license.Conditions   { return license.Conditions{} }
func (BSD_0) Limitations() license.Limitations {
	return license.Limitations{
		NoLiability: true,
		NoWarranty:  true,
	}
}

func (BSD_2_Clause) Permissions() license.Permissions { return permissive }
func (BSD_2_Clause) Conditions() license.Conditions {
	return license.Conditions{LicenseAndCopyrightNotice: true}
}
func (BSD_2_Clause) Limitations() license.Limitations {
	return license.Limitations{
		NoLiability: true,
		NoWarranty:  true,
	}
}

func (BSD_3_Clause) Permissions() license.Permissions { return permissive }
func (BSD_3_Clause) Conditions() license.Conditions {
	return license.Conditions{LicenseAndCopyrightNotice: true}
}
func (BSD_3_Clause) Limitations() license.Limitations {
	return license.Limitations{
		NoLiability: true,
		NoWarranty:  true,
	}
}

func (BSD_3_Clause_Clear) Permissions() license.Permissions { return permissive }
func (BSD_3_Clause_Clear) Conditions() license.Conditions {
	return license.Conditions{LicenseAndCopyrightNotice: true}
}
func (BSD_3_Clause_Clear) Limitations() license.Limitations {
	return license.Limitations{
		NoLiability:    true,
		NoWarranty:     true,
		NoPatentRights: true,
	}
}

func (BSL_1_0) Permissions() license.Permissions { return permissive }
func (BSL_1_0) Conditions() license.Conditions {
	return license.Conditions{LicenseAndCopyrightNotice: true}
}
func (BSL_1_0) Limitations() license.Limitations {
	return license.Limitations{
		NoLiability: true,
		NoWarranty:  true,
	}
}

func (CC0_1_0) Permissions() license.Permissions { return permissive }
func (CC0_1_0) Conditions() license.Conditions   { return license.Conditions{} }
func (CC0_1_0) Limitations() license.Limitations {
	return license.Limitations{
		NoLiability:       true,
		NoTrademarkRights: true,
		NoWarranty:        true,
		NoPatentRights:    true,
	}
}

func (GPL_3_0_Only) Permissions() license.Permissions { return permissiveWithPatent }
func (GPL_3_0_Only) Conditions() license.Conditions {
	return license.Conditions{
		DiscloseSources:           true,
		DocumentChanges:           true,
		LicenseAndCopyrightNotice: true,
		SameLicense:               true,
	}
}
func (GPL_3_0_Only) Limitations() license.Limitations {
	return license.Limitations{
		NoLiability: true,
		NoWarranty:  true,
	}
}

func (LGPL_3_0_Only) Permissions() license.Permissions { return permissiveWithPatent }
func (LGPL_3_0_Only) Conditions() license.Conditions {
	return license.Conditions{
		DiscloseSources:           true,
		DocumentChanges:           true,
		LicenseAndCopyrightNotice: true,
		SameLicense:               true,
	}
}
func (LGPL_3_0_Only) Limitations() license.Limitations {
	return license.Limitations{
		NoLiability: true,
		NoWarranty:  true,
	}
}

func (MIT) Permissions() license.Permissions { return permissive }
func (MIT) Conditions() license.Conditions {
	return license.Conditions{LicenseAndCopyrightNotice: true}
}
func (MIT) Limitations() license.Limitations {
	return license.Limitations{
		NoLiability: true,
		NoWarranty:  true,
	}
}

func (MPL_2_0) Permissions() license.Permissions { return permissiveWithPatent }
func (MPL_2_0) Conditions() license.Conditions {
	return license.Conditions{
		DiscloseSources:           true,
		LicenseAndCopyrightNotice: true,
		SameLicense:               true,
	}
}
func (MPL_2_0) Limitations() license.Limitations {
	return license.Limitations{
		NoLiability:       true,
		NoTrademarkRights: true,
		NoWarranty:        true,
	}
}

func (OSL_3_0) Permissions() license.Permissions { return permissiveWithPatent }
func (OSL_3_0) Conditions() license.Conditions {
	return license.Conditions{
		DiscloseSources:           true,
		DocumentChanges:           true,
		LicenseAndCopyrightNotice: true,
		NetworkUseIsDistribution:  true,
		SameLicense:               true,
	}
}
func (OSL_3_0) Limitations() license.Limitations {
	return license.Limitations{
		NoLiability:       true,
		NoTrademarkRights: true,
		NoWarranty:        true,
	}
}

func (Unlicense) Permissions() license.Permissions { return permissive }
func (Unlicense) Conditions() license.Conditions   { return license.Conditions{} }
func (Unlicense) Limitations() license.Limitations {
	return license.Limitations{
		NoLiability: true,
		NoWarranty:  true,
	}
}

func (WTFPL) Permissions() license.Permissions { return permissive }
func (WTFPL) Conditions() license.Conditions   { return license.Conditions{} }
func (WTFPL) Limitations() license.Limitations { return license.Limitations{} }

// Compile-time assertions that the curated entries satisfy the extension
// contract and stay in sync with the catalog.
var (
	_ license.LicenseExt = AFL_3_0{}
	_ license.LicenseExt = AGPL_3_0_Only{}
	_ license.LicenseExt = Apache_2_0{}
	_ license.LicenseExt = BSD_0{}
	_ license.LicenseExt = BSD_2_Clause{}
	_ license.LicenseExt = BSD_3_Clause{}
	_ license.LicenseExt = BSD_3_Clause_Clear{}
	_ license.LicenseExt = BSL_1_0{}
	_ license.LicenseExt = CC0_1_0{}
	_ license.LicenseExt = GPL_3_0_Only{}
	_ license.LicenseExt = LGPL_3_0_Only{}
	_ license.LicenseExt = MIT{}
	_ license.LicenseExt = MPL_2_0{}
	_ license.LicenseExt = OSL_3_0{}
	_ license.LicenseExt = Unlicense{}
	_ license.LicenseExt = WTFPL{}
)

package server

import (
	"net/http"
	"strconv"

	"github.com/LerianStudio/lib-license/license"
	"github.com/LerianStudio/lib-license/license/exceptions"
	"github.com/LerianStudio/lib-license/license/licenses"
	"github.com/gofiber/fiber/v2"
)

// LicenseSummary is the list-view payload for a catalog license.
type LicenseSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	OSIApproved bool   `json:"osiApproved"`
	FSFLibre    bool   `json:"fsfLibre"`
	Deprecated  bool   `json:"deprecated,omitempty"`
}

// LicenseDetail is the single-entry payload for a catalog license.
type LicenseDetail struct {
	LicenseSummary
	SeeAlso   []string      `json:"seeAlso,omitempty"`
	Comments  string        `json:"comments,omitempty"`
	HasHeader bool          `json:"hasHeader"`
	Facts     *LicenseFacts `json:"facts,omitempty"`
}

// LicenseFacts carries the curated permission, condition, and limitation
// facts of a license. It is present only for curated entries.
type LicenseFacts struct {
	Permissions PermissionsPayload `json:"permissions"`
	Conditions  ConditionsPayload  `json:"conditions"`
	Limitations LimitationsPayload `json:"limitations"`
}

// PermissionsPayload mirrors license.Permissions for JSON responses.
type PermissionsPayload struct {
	CommercialUse bool `json:"commercialUse"`
	Distribution  bool `json:"distribution"`
	Modification  bool `json:"modification"`
	PatentRights  bool `json:"patentRights"`
	PrivateUse    bool `json:"privateUse"`
}

// ConditionsPayload mirrors license.Conditions for JSON responses.
type ConditionsPayload struct {
	DiscloseSources           bool `json:"discloseSources"`
	DocumentChanges           bool `json:"documentChanges"`
	LicenseAndCopyrightNotice bool `json:"licenseAndCopyrightNotice"`
	NetworkUseIsDistribution  bool `json:"networkUseIsDistribution"`
	SameLicense               bool `json:"sameLicense"`
}

// LimitationsPayload mirrors license.Limitations for JSON responses.
type LimitationsPayload struct {
	NoLiability       bool `json:"noLiability"`
	NoTrademarkRights bool `json:"noTrademarkRights"`
	NoWarranty        bool `json:"noWarranty"`
	NoPatentRights    bool `json:"noPatentRights"`
}

// ExceptionDetail is the payload for a catalog exception.
type ExceptionDetail struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Deprecated bool     `json:"deprecated,omitempty"`
	SeeAlso    []string `json:"seeAlso,omitempty"`
	Comments   string   `json:"comments,omitempty"`
}

func newLicenseSummary(lic license.License) LicenseSummary {
	return LicenseSummary{
		ID:          lic.ID(),
		Name:        lic.Name(),
		OSIApproved: lic.IsOSIApproved(),
		FSFLibre:    lic.IsFSFLibre(),
		Deprecated:  lic.IsDeprecated(),
	}
}

func newLicenseDetail(lic license.License) LicenseDetail {
	detail := LicenseDetail{
		LicenseSummary: newLicenseSummary(lic),
		SeeAlso:        lic.SeeAlso(),
	}

	if comments, ok := lic.Comments(); ok {
		detail.Comments = comments
	}

	_, detail.HasHeader = lic.Header()

	if ext, ok := lic.(license.LicenseExt); ok {
		detail.Facts = newLicenseFacts(ext)
	}

	return detail
}

func newLicenseFacts(ext license.LicenseExt) *LicenseFacts {
	perms := ext.Permissions()
	conds := ext.Conditions()
	limits := ext.Limitations()

	return &LicenseFacts{
		Permissions: PermissionsPayload{
			CommercialUse: perms.CommercialUse,
			Distribution:  perms.Distribution,
			Modification:  perms.Modification,
			PatentRights:  perms.PatentRights,
			PrivateUse:    perms.PrivateUse,
		},
		Conditions: ConditionsPayload{
			DiscloseSources:           conds.DiscloseSources,
			DocumentChanges:           conds.DocumentChanges,
			LicenseAndCopyrightNotice: conds.LicenseAndCopyrightNotice,
			NetworkUseIsDistribution:  conds.NetworkUseIsDistribution,
			SameLicense:               conds.SameLicense,
		},
		Limitations: LimitationsPayload{
			NoLiability:       limits.NoLiability,
			NoTrademarkRights: limits.NoTrademarkRights,
			NoWarranty:        limits.NoWarranty,
			NoPatentRights:    limits.NoPatentRights,
		},
	}
}

func newExceptionDetail(exc license.Exception) ExceptionDetail {
	detail := ExceptionDetail{
		ID:         exc.ID(),
		Name:       exc.Name(),
		Deprecated: exc.IsDeprecated(),
		SeeAlso:    exc.SeeAlso(),
	}

	if comments, ok := exc.Comments(); ok {
		detail.Comments = comments
	}

	return detail
}

func notFoundResponse(c *fiber.Ctx, id string) error {
	return NotFound(c,
		strconv.Itoa(http.StatusNotFound),
		"Identifier Not Found",
		"No catalog entry matches the SPDX identifier "+strconv.Quote(id)+".")
}

func handleHealth(c *fiber.Ctx) error {
	return OK(c, fiber.Map{"status": "healthy"})
}

func handleListLicenses(c *fiber.Ctx) error {
	summaries := make([]LicenseSummary, 0, licenses.Count())
	for lic := range licenses.All() {
		summaries = append(summaries, newLicenseSummary(lic))
	}

	return OK(c, fiber.Map{
		"items": summaries,
		"total": len(summaries),
	})
}

func handleGetLicense(c *fiber.Ctx) error {
	id := c.Params("id")

	lic, err := licenses.FromID(id)
	if err != nil {
		return notFoundResponse(c, id)
	}

	return OK(c, newLicenseDetail(lic))
}

func handleGetLicenseText(c *fiber.Ctx) error {
	id := c.Params("id")

	lic, err := licenses.FromID(id)
	if err != nil {
		return notFoundResponse(c, id)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

	return c.Status(http.StatusOK).SendString(lic.Text())
}

func handleGetLicenseHeader(c *fiber.Ctx) error {
	id := c.Params("id")

	lic, err := licenses.FromID(id)
	if err != nil {
		return notFoundResponse(c, id)
	}

	header, ok := lic.Header()
	if !ok {
		return NotFound(c,
			strconv.Itoa(http.StatusNotFound),
			"No Standard Header",
			"License "+strconv.Quote(lic.ID())+" does not define a standard header.")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

	return c.Status(http.StatusOK).SendString(header)
}

func handleListExceptions(c *fiber.Ctx) error {
	items := make([]ExceptionDetail, 0, exceptions.Count())
	for exc := range exceptions.All() {
		items = append(items, newExceptionDetail(exc))
	}

	return OK(c, fiber.Map{
		"items": items,
		"total": len(items),
	})
}

func handleGetException(c *fiber.Ctx) error {
	id := c.Params("id")

	exc, err := exceptions.FromID(id)
	if err != nil {
		return notFoundResponse(c, id)
	}

	return OK(c, newExceptionDetail(exc))
}

func handleGetExceptionText(c *fiber.Ctx) error {
	id := c.Params("id")

	exc, err := exceptions.FromID(id)
	if err != nil {
		return notFoundResponse(c, id)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

	return c.Status(http.StatusOK).SendString(exc.Text())
}

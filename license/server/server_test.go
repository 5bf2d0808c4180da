//go:build unit

package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LerianStudio/lib-license/license/licenses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()

	app := NewApp(nil)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp, body
}

func TestHealth(t *testing.T) {
	t.Parallel()

	resp, body := testRequest(t, "/health")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy"}`, string(body))
}

func TestListLicenses(t *testing.T) {
	t.Parallel()

	resp, body := testRequest(t, "/v1/licenses")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Items []LicenseSummary `json:"items"`
		Total int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))

	assert.Equal(t, licenses.Count(), payload.Total)
	assert.Len(t, payload.Items, payload.Total)

	ids := make(map[string]bool, len(payload.Items))
	for _, item := range payload.Items {
		ids[item.ID] = true
	}

	assert.True(t, ids["MIT"])
	assert.True(t, ids["Apache-2.0"])
}

func TestGetLicense(t *testing.T) {
	t.Parallel()

	resp, body := testRequest(t, "/v1/licenses/Apache-2.0")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail LicenseDetail
	require.NoError(t, json.Unmarshal(body, &detail))

	assert.Equal(t, "Apache-2.0", detail.ID)
	assert.Equal(t, "Apache License 2.0", detail.Name)
	assert.True(t, detail.OSIApproved)
	assert.True(t, detail.HasHeader)
	require.NotNil(t, detail.Facts)
	assert.True(t, detail.Facts.Permissions.PatentRights)
}

func TestGetLicense_CaseInsensitivePath(t *testing.T) {
	t.Parallel()

	resp, body := testRequest(t, "/v1/licenses/mit")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail LicenseDetail
	require.NoError(t, json.Unmarshal(body, &detail))
	assert.Equal(t, "MIT", detail.ID)
}

func TestGetLicense_NotFound(t *testing.T) {
	t.Parallel()

	resp, body := testRequest(t, "/v1/licenses/Not-A-License")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp Response
	require.NoError(t, json.Unmarshal(body, &errResp))

	assert.Equal(t, "404", errResp.Code)
	assert.Equal(t, "Identifier Not Found", errResp.Title)
	assert.Contains(t, errResp.Message, "Not-A-License")
}

func TestGetLicense_UncuratedHasNoFacts(t *testing.T) {
	t.Parallel()

	resp, body := testRequest(t, "/v1/licenses/ISC")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail LicenseDetail
	require.NoError(t, json.Unmarshal(body, &detail))
	assert.Nil(t, detail.Facts)
}

func TestGetLicenseText(t *testing.T) {
	t.Parallel()

	resp, body := testRequest(t, "/v1/licenses/MIT/text")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.True(t, strings.HasPrefix(resp.Header.Get(fiberContentType), "text/plain"))
	assert.Contains(t, string(body), "Permission is hereby granted")
}

func TestGetLicenseHeader(t *testing.T) {
	t.Parallel()

	resp, body := testRequest(t, "/v1/licenses/Apache-2.0/header")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Licensed under the Apache License, Version 2.0")

	resp, _ = testRequest(t, "/v1/licenses/MIT/header")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListExceptions(t *testing.T) {
	t.Parallel()

	resp, body := testRequest(t, "/v1/exceptions")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Items []ExceptionDetail `json:"items"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.NotEmpty(t, payload.Items)
	assert.Equal(t, payload.Total, len(payload.Items))
}

func TestGetException(t *testing.T) {
	t.Parallel()

	resp, body := testRequest(t, "/v1/exceptions/Classpath-exception-2.0")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail ExceptionDetail
	require.NoError(t, json.Unmarshal(body, &detail))
	assert.Equal(t, "Classpath exception 2.0", detail.Name)
}

func TestGetExceptionText(t *testing.T) {
	t.Parallel()

	resp, body := testRequest(t, "/v1/exceptions/Linux-syscall-note/text")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "system calls")
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	t.Parallel()

	resp, _ := testRequest(t, "/health")
	assert.NotEmpty(t, resp.Header.Get(HeaderID))
}

func TestRequestIDHeaderIsPreserved(t *testing.T) {
	t.Parallel()

	app := NewApp(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(HeaderID, "my-correlation-id")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()

	assert.Equal(t, "my-correlation-id", resp.Header.Get(HeaderID))
}

// bareLicense is a catalog entry with none of the optional metadata set.
type bareLicense struct{}

func (bareLicense) ID() string               { return "Bare-1.0" }
func (bareLicense) Name() string             { return "Bare License 1.0" }
func (bareLicense) Text() string             { return "Do as you please." }
func (bareLicense) Header() (string, bool)   { return "", false }
func (bareLicense) IsOSIApproved() bool      { return false }
func (bareLicense) IsFSFLibre() bool         { return false }
func (bareLicense) IsDeprecated() bool       { return false }
func (bareLicense) Comments() (string, bool) { return "", false }
func (bareLicense) SeeAlso() []string         { return nil }

func TestLicenseDetail_EmptySeeAlso(t *testing.T) {
	t.Parallel()

	detail := newLicenseDetail(bareLicense{})
	assert.Empty(t, detail.SeeAlso)

	b, err := json.Marshal(detail)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "seeAlso")
}

const fiberContentType = "Content-Type"

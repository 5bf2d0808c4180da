//go:build unit

package licenses

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/LerianStudio/lib-license/license"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromID_EveryCatalogEntryResolvesToItself(t *testing.T) {
	t.Parallel()

	for lic := range All() {
		resolved, err := FromID(lic.ID())
		require.NoError(t, err, "id %s", lic.ID())
		assert.Equal(t, lic.ID(), resolved.ID())
		assert.Equal(t, lic.Name(), resolved.Name())
	}
}

func TestFromID_UnknownIdentifier(t *testing.T) {
	t.Parallel()

	lic, err := FromID("Not-A-License-1.0")
	require.Error(t, err)
	assert.Nil(t, lic)
	assert.ErrorIs(t, err, license.ErrNotFound)
	assert.Contains(t, err.Error(), "Not-A-License-1.0")
}

func TestFromID_EmptyIdentifier(t *testing.T) {
	t.Parallel()

	_, err := FromID("")
	assert.ErrorIs(t, err, license.ErrNotFound)
}

func TestFromID_CaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"MIT", "mit", "Mit", "mIT"} {
		lic, err := FromID(id)
		require.NoError(t, err, "input %q", id)
		assert.Equal(t, "MIT", lic.ID(), "canonical casing regardless of input %q", id)
	}

	lic, err := FromID("apache-2.0")
	require.NoError(t, err)
	assert.Equal(t, "Apache-2.0", lic.ID())
}

func TestFromID_Apache20Metadata(t *testing.T) {
	t.Parallel()

	lic, err := FromID("Apache-2.0")
	require.NoError(t, err)

	assert.Equal(t, "Apache License 2.0", lic.Name())
	assert.True(t, lic.IsOSIApproved())
	assert.True(t, lic.IsFSFLibre())
	assert.False(t, lic.IsDeprecated())

	header, ok := lic.Header()
	require.True(t, ok)
	assert.Contains(t, header, "Licensed under the Apache License, Version 2.0")
}

func TestFromID_DeprecatedIdentifierStillResolves(t *testing.T) {
	t.Parallel()

	deprecated, err := FromID("GPL-3.0")
	require.NoError(t, err)
	assert.True(t, deprecated.IsDeprecated())

	successor, err := FromID("GPL-3.0-only")
	require.NoError(t, err)
	assert.False(t, successor.IsDeprecated())

	// Family members share one text payload.
	assert.Equal(t, successor.Text(), deprecated.Text())
}

func TestFromID_TextAndSeeAlsoNeverFail(t *testing.T) {
	t.Parallel()

	for lic := range All() {
		assert.NotEmpty(t, lic.Text(), "id %s", lic.ID())

		// SeeAlso may be empty but must be safe to read.
		for _, url := range lic.SeeAlso() {
			assert.NotEmpty(t, url, "id %s", lic.ID())
		}
	}
}

func TestFromID_HeaderCommaOk(t *testing.T) {
	t.Parallel()

	mit, err := FromID("MIT")
	require.NoError(t, err)

	header, ok := mit.Header()
	assert.False(t, ok)
	assert.Empty(t, header)

	mpl, err := FromID("MPL-2.0")
	require.NoError(t, err)

	header, ok = mpl.Header()
	assert.True(t, ok)
	assert.Contains(t, header, "Mozilla Public License")
}

func TestFromIDExt_CuratedEntry(t *testing.T) {
	t.Parallel()

	ext, ok := FromIDExt("MIT")
	require.True(t, ok)

	perms := ext.Permissions()
	assert.True(t, perms.PrivateUse)
	assert.True(t, perms.CommercialUse)
	assert.True(t, perms.Distribution)
	assert.True(t, perms.Modification)
	assert.False(t, perms.PatentRights)

	conds := ext.Conditions()
	assert.True(t, conds.LicenseAndCopyrightNotice)
	assert.False(t, conds.SameLicense)

	limits := ext.Limitations()
	assert.True(t, limits.NoLiability)
	assert.True(t, limits.NoWarranty)
}

func TestFromIDExt_CopyleftEntry(t *testing.T) {
	t.Parallel()

	ext, ok := FromIDExt("AGPL-3.0-only")
	require.True(t, ok)

	assert.True(t, ext.Conditions().NetworkUseIsDistribution)
	assert.True(t, ext.Conditions().SameLicense)
	assert.True(t, ext.Permissions().PatentRights)
}

func TestFromIDExt_UncuratedEntry(t *testing.T) {
	t.Parallel()

	// ISC is in the catalog but carries no curated facts.
	_, err := FromID("ISC")
	require.NoError(t, err)

	ext, ok := FromIDExt("ISC")
	assert.False(t, ok)
	assert.Nil(t, ext)
}

func TestFromIDExt_UnknownIdentifier(t *testing.T) {
	t.Parallel()

	ext, ok := FromIDExt("Not-A-License-1.0")
	assert.False(t, ok)
	assert.Nil(t, ext)
}

func TestFromIDExt_AssertionMatchesHelper(t *testing.T) {
	t.Parallel()

	for lic := range All() {
		_, assertOK := lic.(license.LicenseExt)
		_, helperOK := FromIDExt(lic.ID())
		assert.Equal(t, assertOK, helperOK, "id %s", lic.ID())
	}
}

func TestAll_AscendingOrder(t *testing.T) {
	t.Parallel()

	var ids []string
	for lic := range All() {
		ids = append(ids, lic.ID())
	}

	assert.True(t, sort.StringsAreSorted(ids), "ids not sorted: %v", ids)
	assert.Len(t, ids, Count())
}

func TestAll_Restartable(t *testing.T) {
	t.Parallel()

	seq := All()

	var first, second []string

	for lic := range seq {
		first = append(first, lic.ID())
	}

	for lic := range seq {
		second = append(second, lic.ID())
	}

	assert.Equal(t, first, second)
}

func TestAll_EarlyBreak(t *testing.T) {
	t.Parallel()

	count := 0
	for range All() {
		count++
		if count == 3 {
			break
		}
	}

	assert.Equal(t, 3, count)
}

func TestIndex_KeysAreLowercase(t *testing.T) {
	t.Parallel()

	for key := range index {
		assert.Equal(t, strings.ToLower(key), key)
	}

	assert.Len(t, index, Count())
}

func TestErrNotFound_WrappingShape(t *testing.T) {
	t.Parallel()

	_, err := FromID("bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, license.ErrNotFound))
	assert.NotEqual(t, license.ErrNotFound, err, "error carries the offending id")
}

//go:build unit

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-license/license/exceptions"
	"github.com/LerianStudio/lib-license/license/licenses"
)

func TestListEntries_Licenses(t *testing.T) {
	t.Parallel()

	entries, err := listEntries(false, false, false)
	require.NoError(t, err)
	assert.Len(t, entries, licenses.Count())
}

func TestListEntries_OSIOnly(t *testing.T) {
	t.Parallel()

	entries, err := listEntries(false, false, true)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		assert.True(t, e.OSIApproved, "entry %s", e.ID)
	}
}

func TestListEntries_DeprecatedOnly(t *testing.T) {
	t.Parallel()

	entries, err := listEntries(false, true, false)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		assert.True(t, e.Deprecated, "entry %s", e.ID)
	}
}

func TestListEntries_Exceptions(t *testing.T) {
	t.Parallel()

	entries, err := listEntries(true, false, false)
	require.NoError(t, err)
	assert.Len(t, entries, exceptions.Count())
}

func TestListEntries_OSIWithExceptionsRejected(t *testing.T) {
	t.Parallel()

	entries, err := listEntries(true, false, true)
	require.Error(t, err)
	assert.Nil(t, entries)
	assert.Contains(t, err.Error(), "--osi")
}

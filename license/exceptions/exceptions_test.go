//go:build unit

package exceptions

import (
	"sort"
	"strings"
	"testing"

	"github.com/LerianStudio/lib-license/license"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromID_EveryCatalogEntryResolvesToItself(t *testing.T) {
	t.Parallel()

	for exc := range All() {
		resolved, err := FromID(exc.ID())
		require.NoError(t, err, "id %s", exc.ID())
		assert.Equal(t, exc.ID(), resolved.ID())
		assert.NotEmpty(t, resolved.Text())
	}
}

func TestFromID_UnknownIdentifier(t *testing.T) {
	t.Parallel()

	exc, err := FromID("Made-Up-exception-9.9")
	require.Error(t, err)
	assert.Nil(t, exc)
	assert.ErrorIs(t, err, license.ErrNotFound)
}

func TestFromID_CaseInsensitive(t *testing.T) {
	t.Parallel()

	exc, err := FromID("classpath-EXCEPTION-2.0")
	require.NoError(t, err)
	assert.Equal(t, "Classpath-exception-2.0", exc.ID())
}

func TestFromID_GCCRuntimeException(t *testing.T) {
	t.Parallel()

	exc, err := FromID("GCC-exception-3.1")
	require.NoError(t, err)

	assert.Equal(t, "GCC Runtime Library exception 3.1", exc.Name())
	assert.False(t, exc.IsDeprecated())
	assert.Contains(t, exc.Text(), "GCC RUNTIME LIBRARY EXCEPTION")
}

func TestFromID_DigitLeadingIdentifier(t *testing.T) {
	t.Parallel()

	exc, err := FromID("389-exception")
	require.NoError(t, err)
	assert.Equal(t, "389 Directory Server Exception", exc.Name())
}

func TestAll_AscendingOrderAndRestartable(t *testing.T) {
	t.Parallel()

	seq := All()

	var first, second []string

	for exc := range seq {
		first = append(first, exc.ID())
	}

	for exc := range seq {
		second = append(second, exc.ID())
	}

	assert.True(t, sort.StringsAreSorted(first), "ids not sorted: %v", first)
	assert.Equal(t, first, second)
	assert.Len(t, first, Count())
}

func TestIndex_KeysAreLowercase(t *testing.T) {
	t.Parallel()

	for key := range index {
		assert.Equal(t, strings.ToLower(key), key)
	}

	assert.Len(t, index, Count())
}

//go:build unit

package codec

import (
	"encoding/json"
	"testing"

	"github.com/LerianStudio/lib-license/license"
	"github.com/LerianStudio/lib-license/license/licenses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLicense_MarshalJSON(t *testing.T) {
	t.Parallel()

	mit, err := licenses.FromID("MIT")
	require.NoError(t, err)

	data, err := json.Marshal(License{mit})
	require.NoError(t, err)
	assert.JSONEq(t, `"MIT"`, string(data))
}

func TestLicense_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var l License
	require.NoError(t, json.Unmarshal([]byte(`"Apache-2.0"`), &l))
	assert.Equal(t, "Apache-2.0", l.ID())
	assert.True(t, l.IsOSIApproved())
}

func TestLicense_UnmarshalNormalizesCasing(t *testing.T) {
	t.Parallel()

	var l License
	require.NoError(t, json.Unmarshal([]byte(`"apache-2.0"`), &l))

	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `"Apache-2.0"`, string(data))
}

func TestLicense_UnmarshalUnknownID(t *testing.T) {
	t.Parallel()

	var l License
	err := json.Unmarshal([]byte(`"No-Such-License"`), &l)
	require.Error(t, err)
	assert.ErrorIs(t, err, license.ErrNotFound)
	assert.Nil(t, l.License)
}

func TestLicense_UnmarshalNonString(t *testing.T) {
	t.Parallel()

	var l License
	assert.Error(t, json.Unmarshal([]byte(`42`), &l))
}

func TestLicense_MarshalZeroValue(t *testing.T) {
	t.Parallel()

	_, err := json.Marshal(License{})
	assert.Error(t, err)
}

func TestLicense_StructFieldRoundTrip(t *testing.T) {
	t.Parallel()

	type manifest struct {
		Name    string  `json:"name"`
		License License `json:"license"`
	}

	mit, err := licenses.FromID("MIT")
	require.NoError(t, err)

	in := manifest{Name: "demo", License: License{mit}}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"demo","license":"MIT"}`, string(data))

	var out manifest
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "MIT", out.License.ID())
}

func TestException_RoundTrip(t *testing.T) {
	t.Parallel()

	var e Exception
	require.NoError(t, json.Unmarshal([]byte(`"LLVM-exception"`), &e))
	assert.Equal(t, "LLVM-exception", e.ID())

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `"LLVM-exception"`, string(data))
}

func TestException_UnmarshalUnknownID(t *testing.T) {
	t.Parallel()

	var e Exception
	err := json.Unmarshal([]byte(`"Bogus-exception-1.0"`), &e)
	require.Error(t, err)
	assert.ErrorIs(t, err, license.ErrNotFound)
}

func TestException_MarshalZeroValue(t *testing.T) {
	t.Parallel()

	_, err := json.Marshal(Exception{})
	assert.Error(t, err)
}

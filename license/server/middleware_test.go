//go:build unit

package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetenvOrDefault_WithValue(t *testing.T) {
	key := "TEST_GETENV_OR_DEFAULT"

	t.Setenv(key, "configured")

	assert.Equal(t, "configured", GetenvOrDefault(key, "default"))
}

func TestGetenvOrDefault_WithEmptyValue(t *testing.T) {
	key := "TEST_GETENV_OR_DEFAULT_EMPTY"

	t.Setenv(key, "")

	assert.Equal(t, "default", GetenvOrDefault(key, "default"))
}

func TestGetenvOrDefault_WithWhitespace(t *testing.T) {
	key := "TEST_GETENV_OR_DEFAULT_WHITESPACE"

	t.Setenv(key, "   ")

	assert.Equal(t, "default", GetenvOrDefault(key, "default"), "whitespace-only value should return default")
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("ENV_NAME", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := ConfigFromEnv()

	assert.Equal(t, ":3000", cfg.Address)
	assert.Equal(t, "local", cfg.Environment)
	assert.Empty(t, cfg.LogLevel)
}

func TestRequestInfo_CLFString(t *testing.T) {
	t.Parallel()

	date, err := time.Parse(time.RFC3339, "2026-01-02T15:04:05Z")
	assert.NoError(t, err)

	info := &RequestInfo{
		Method:        "GET",
		URI:           "/v1/licenses/MIT",
		Referer:       "-",
		RemoteAddress: "10.0.0.1",
		Status:        200,
		Date:          date,
		UserAgent:     "curl/8.0",
		Protocol:      "http",
		Size:          512,
	}

	clf := info.CLFString()

	assert.Contains(t, clf, `"GET /v1/licenses/MIT"`)
	assert.Contains(t, clf, "10.0.0.1")
	assert.Contains(t, clf, "200 512")
	assert.Contains(t, clf, "[02/Jan/2026:15:04:05 +0000]")
	assert.Equal(t, clf, info.String())
}

package testutil

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertRedirect verifies a redirect response and its target
func AssertRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode, "expected a redirect")
	assert.Equal(t, location, resp.Header.Get("Location"), "unexpected redirect target")
}

// AssertBodyContains verifies the response body contains the substring
func AssertBodyContains(t *testing.T, resp *http.Response, substring string) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	assert.Contains(t, string(body), substring, "body does not contain %q", substring)
}

// ReadBody drains and returns the response body
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	return string(body)
}

package selfupdate

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, tag string) *Checker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/arjunvk/levelcheck/releases/latest", r.URL.Path)
		fmt.Fprintf(w, `{"tag_name": %q}`, tag)
	}))
	t.Cleanup(srv.Close)
	return NewChecker(WithAPIBaseURL(srv.URL))
}

func TestCheckUpdateAvailable(t *testing.T) {
	c := newTestChecker(t, "v1.4.0")

	result, err := c.Check(t.Context(), &CheckInput{Version: "1.3.2"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.4.0", result.LatestVersion)
}

func TestCheckUpToDate(t *testing.T) {
	c := newTestChecker(t, "v1.4.0")

	result, err := c.Check(t.Context(), &CheckInput{Version: "v1.4.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckNewerLocalBuild(t *testing.T) {
	c := newTestChecker(t, "v1.4.0")

	result, err := c.Check(t.Context(), &CheckInput{Version: "v1.5.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckInvalidLocalVersion(t *testing.T) {
	// A build with an unparseable version should still be offered the update.
	c := newTestChecker(t, "v1.4.0")

	result, err := c.Check(t.Context(), &CheckInput{Version: "(devel)"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheckAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewChecker(WithAPIBaseURL(srv.URL))
	_, err := c.Check(t.Context(), &CheckInput{Version: "1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}

package client_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/UnknownOlympus/ems-console/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHTTPClient(t *testing.T) {
	var logBuf bytes.Buffer // buffer for log capturing
	testLogger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{
		Level: slog.LevelDebug, // Level debug needed, for CheckRedirect message capturing
	}))

	t.Run("client properties", func(t *testing.T) {
		httpClient := client.CreateHTTPClient(testLogger, 3*time.Second)

		assert.Equal(t, 3*time.Second, httpClient.Timeout)
		assert.NotNil(t, httpClient.CheckRedirect, "client.CheckRedirect must be set")
	})

	t.Run("CheckRedirect behavior - redirection and logging", func(t *testing.T) {
		logBuf.Reset()

		finalPath := "/final-destination"
		redirectPath := "/redirect-here"

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case redirectPath:
				http.Redirect(w, r, finalPath, http.StatusFound)
			case finalPath:
				w.WriteHeader(http.StatusOK)
			default:
				http.NotFound(w, r)
			}
		}))
		defer server.Close()

		httpClient := client.CreateHTTPClient(testLogger, time.Second)

		resp, err := httpClient.Get(server.URL + redirectPath)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, finalPath, resp.Request.URL.Path)
		assert.Contains(t, logBuf.String(), "Redirected to URL")
		assert.Contains(t, logBuf.String(), "URL="+server.URL+finalPath)
	})
}

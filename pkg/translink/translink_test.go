package translink

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transitflow/transitflow/pkg/config"
)

func TestGetBusLines(t *testing.T) {
	var requestedPath string
	var requestedKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		requestedKey = r.URL.Query().Get("apikey")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"RouteNo":"99","RouteName":"99 UBC B-LINE","Direction":"EAST","Destination":"UBC"}]`))
	}))
	defer server.Close()

	client := NewClient(config.TransLinkConfig{BaseURL: server.URL, APIKey: "secret"})

	busLines, err := client.GetBusLines(context.Background(), "99")
	require.NoError(t, err)

	require.Len(t, busLines, 1)
	assert.Equal(t, "99 UBC B-LINE", busLines[0].RouteName)
	assert.Equal(t, "/routes/99", requestedPath)
	assert.Equal(t, "secret", requestedKey)
}

func TestGetBusLinesRetriesServerErrors(t *testing.T) {
	attempts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(config.TransLinkConfig{BaseURL: server.URL, APIKey: "secret"})

	_, err := client.GetBusLines(context.Background(), "99")
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestGetBusLinesClientErrorIsPermanent(t *testing.T) {
	attempts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(config.TransLinkConfig{BaseURL: server.URL, APIKey: "wrong"})

	_, err := client.GetBusLines(context.Background(), "99")
	assert.Error(t, err)
	assert.Equal(t, 1, attempts, "4xx responses must not be retried")
}

func TestHasAPIKey(t *testing.T) {
	assert.False(t, NewClient(config.TransLinkConfig{}).HasAPIKey())
	assert.True(t, NewClient(config.TransLinkConfig{APIKey: "secret"}).HasAPIKey())
}

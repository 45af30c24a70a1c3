package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransport_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	client := &http.Client{Transport: NewTransport(nil, zerolog.New(&buf).Level(zerolog.DebugLevel))}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodDelete, srv.URL+"/organizations/1", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "abc")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["message"])
	assert.Equal(t, "DELETE", entry["method"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, float64(http.StatusNoContent), entry["status"])
	assert.Equal(t, srv.URL+"/organizations/1", entry["url"])
}

func TestTransport_RoundTrip_canceled(t *testing.T) {
	var buf bytes.Buffer
	client := &http.Client{Transport: NewTransport(nil, zerolog.New(&buf).Level(zerolog.InfoLevel))}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://127.0.0.1:1/organizations", nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	require.Error(t, err)

	// logged below the configured level
	assert.Empty(t, buf.String())
}

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Send(t *testing.T) {
	type request struct {
		method string
		query  string
		header http.Header
		body   string
	}

	testCases := []struct {
		name   string
		auth   *HTTPAuthConfig
		assert func(t *testing.T, r request)
	}{
		{
			name: "should add api key to query",
			auth: &HTTPAuthConfig{Type: "api_key", In: "query", Key: "token", Value: "secret"},
			assert: func(t *testing.T, r request) {
				assert.Equal(t, "token=secret", r.query)
			},
		},
		{
			name: "should add api key to header",
			auth: &HTTPAuthConfig{Type: "api_key", In: "header", Key: "X-Token", Value: "secret"},
			assert: func(t *testing.T, r request) {
				assert.Equal(t, "secret", r.header.Get("X-Token"))
			},
		},
		{
			name: "should add bearer token",
			auth: &HTTPAuthConfig{Type: "bearer", Token: "abc"},
			assert: func(t *testing.T, r request) {
				assert.Equal(t, "Bearer abc", r.header.Get("Authorization"))
			},
		},
		{
			name: "should add basic auth",
			auth: &HTTPAuthConfig{Type: "basic", Username: "user", Password: "pass"},
			assert: func(t *testing.T, r request) {
				assert.Equal(t, "Basic dXNlcjpwYXNz", r.header.Get("Authorization"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var received request
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, _ := io.ReadAll(r.Body)
				received = request{method: r.Method, query: r.URL.RawQuery, header: r.Header, body: string(b)}
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client, err := NewHTTPClient(&HTTPClientConfig{URL: server.URL, Auth: tc.auth})
			require.NoError(t, err)

			resp, err := client.Send(context.Background(), []byte(`{"text":"hello"}`))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, http.MethodPost, received.method)
			assert.Equal(t, `{"text":"hello"}`, received.body)
			assert.Equal(t, "application/json", received.header.Get("Content-Type"))
			tc.assert(t, received)
		})
	}
}

func TestNewHTTPClient(t *testing.T) {
	t.Run("should return error when url is invalid", func(t *testing.T) {
		_, err := NewHTTPClient(&HTTPClientConfig{URL: "not a url"})
		assert.Error(t, err)
	})

	t.Run("should return error when auth is incomplete", func(t *testing.T) {
		_, err := NewHTTPClient(&HTTPClientConfig{
			URL:  "https://example.com",
			Auth: &HTTPAuthConfig{Type: "bearer"},
		})
		assert.Error(t, err)
	})
}

package learn

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/bbtoken/pkg/core"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name           string
		trailingSlash  bool
		serverResponse func(t *testing.T, w http.ResponseWriter, r *http.Request)
		expectedErr    string
		checkClient    func(t *testing.T, c *Client)
	}{
		{
			name: "success",
			serverResponse: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				t.Helper()

				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/learn/api/public/v1/oauth2/token", r.URL.Path)
				assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

				user, pass, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, "test-key", user)
				assert.Equal(t, "test-secret", pass)

				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "client_credentials", r.FormValue("grant_type"))

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(tokenResponse{
					AccessToken: "test-token",
					TokenType:   "bearer",
					ExpiresIn:   3600,
				})
			},
			checkClient: func(t *testing.T, c *Client) {
				t.Helper()

				assert.Equal(t, "test-token", c.AccessToken())
				assert.WithinDuration(t, time.Now().Add(time.Hour), c.ExpiresAt(), 5*time.Second)
			},
		},
		{
			name:          "trailing slash on base url",
			trailingSlash: true,
			serverResponse: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				t.Helper()

				assert.Equal(t, "/learn/api/public/v1/oauth2/token", r.URL.Path)

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(tokenResponse{
					AccessToken: "test-token",
					TokenType:   "bearer",
					ExpiresIn:   3600,
				})
			},
			checkClient: func(t *testing.T, c *Client) {
				t.Helper()

				assert.Equal(t, "test-token", c.AccessToken())
			},
		},
		{
			name: "rejected credentials",
			serverResponse: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				t.Helper()

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"Invalid client credentials"}`))
			},
			expectedErr: "Invalid client credentials",
		},
		{
			name: "invalid response",
			serverResponse: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				t.Helper()

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte("invalid json"))
			},
			expectedErr: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.serverResponse(t, w, r)
			}))
			defer server.Close()

			baseURL := server.URL
			if tt.trailingSlash {
				baseURL += "/"
			}

			c, err := New(context.Background(), "test-key", "test-secret", baseURL)

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Nil(t, c)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
				require.NotNil(t, c)
				tt.checkClient(t, c)
			}
		})
	}
}

func TestNewMissingCredentials(t *testing.T) {
	tests := []struct {
		name    string
		appKey  string
		secret  string
		baseURL string
	}{
		{name: "empty app key", secret: "s", baseURL: "https://school.blackboard.com"},
		{name: "empty secret", appKey: "k", baseURL: "https://school.blackboard.com"},
		{name: "empty base url", appKey: "k", secret: "s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(context.Background(), tt.appKey, tt.secret, tt.baseURL)

			assert.Nil(t, c)
			assert.ErrorIs(t, err, core.ErrMissingCredentials)
		})
	}
}

func TestNewRejectedStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c, err := New(context.Background(), "test-key", "test-secret", server.URL)

	require.Error(t, err)
	assert.Nil(t, c)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestExpiration(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		expected  string
	}{
		{
			name:      "live token",
			expiresAt: now.Add(30 * time.Minute),
			expected:  "in 30 minutes",
		},
		{
			name:      "nearly expired token",
			expiresAt: now.Add(45 * time.Second),
			expected:  "in 45 seconds",
		},
		{
			name:      "expired token",
			expiresAt: now.Add(-5 * time.Minute),
			expected:  "5 minutes ago",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{
				clock: clockwork.NewFakeClockAt(now),
				token: &core.Token{AccessToken: "test-token", ExpiresAt: tt.expiresAt},
			}

			assert.Equal(t, tt.expected, c.Expiration())
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "message only",
			err:      &APIError{Status: 404, Message: "not found"},
			expected: "learn api: status 404: not found",
		},
		{
			name:     "oauth error code only",
			err:      &APIError{Status: 401, Code: "invalid_client"},
			expected: "learn api: status 401: invalid_client",
		},
		{
			name:     "no detail",
			err:      &APIError{Status: 502},
			expected: "learn api: unexpected status 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

package learn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/campusops/bbtoken/pkg/core"
)

// APIError describes a non-2xx response from a Learn endpoint. The token
// endpoint reports failures in OAuth2 error format, the public API endpoints
// as {"status": .., "message": ..}; both are folded into this type.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code
	}

	if msg == "" {
		return fmt.Sprintf("learn api: unexpected status %d", e.Status)
	}

	return fmt.Sprintf("learn api: status %d: %s", e.Status, msg)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// authenticate performs the OAuth2 client-credentials exchange against the
// Learn token endpoint and stores the issued token. Learn reuses a live token
// across exchanges for the same integration key, so expires_in carries the
// remaining lifetime rather than a full TTL.
func (c *Client) authenticate(ctx context.Context) error {
	data := url.Values{}
	data.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)
	req.SetBasicAuth(c.appKey, c.secret)

	slog.DebugContext(ctx, "Requesting access token", slog.String("url", c.baseURL+tokenPath))

	resp, err := c.cl.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.token = &core.Token{
		AccessToken: tr.AccessToken,
		TokenType:   tr.TokenType,
		ExpiresAt:   c.clock.Now().Add(time.Duration(tr.ExpiresIn) * time.Second),
	}

	return nil
}

// newAPIError reads an error response body and maps it onto an APIError.
// A body that is not the expected JSON still yields the status code.
func newAPIError(resp *http.Response) error {
	var body struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
		Status           int    `json:"status"`
		Message          string `json:"message"`
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil {
		_ = json.Unmarshal(raw, &body)
	}

	msg := body.Message
	if msg == "" {
		msg = body.ErrorDescription
	}

	return &APIError{
		Status:  resp.StatusCode,
		Code:    body.Error,
		Message: msg,
	}
}

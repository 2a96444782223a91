package learn

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/campusops/bbtoken/pkg/core"
	"github.com/jonboulle/clockwork"
)

const (
	requestTimeout = 10 * time.Second

	tokenPath   = "/learn/api/public/v1/oauth2/token"
	versionPath = "/learn/api/public/v1/system/version"

	userAgent = "bbtoken"
)

// Client is an authenticated session against the public REST API of a
// Blackboard Learn instance. New performs the OAuth2 client-credentials
// exchange up front, so a returned client always holds a token; the zero
// value is not usable.
type Client struct {
	appKey  string
	secret  string
	baseURL string
	cl      *http.Client
	clock   clockwork.Clock
	token   *core.Token
}

// New authenticates a REST integration against a Learn instance and returns a
// client holding the issued access token. appKey and secret are the
// application key and secret of a registered REST integration; baseURL is the
// instance root, e.g. https://school.blackboard.com (a trailing slash is
// tolerated). Returns an error if any argument is empty or the token exchange
// is rejected.
func New(ctx context.Context, appKey, secret, baseURL string) (*Client, error) {
	if appKey == "" || secret == "" || baseURL == "" {
		return nil, core.ErrMissingCredentials
	}

	c := &Client{
		appKey:  appKey,
		secret:  secret,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		cl: &http.Client{
			Timeout: requestTimeout,
		},
		clock: clockwork.NewRealClock(),
	}

	if err := c.authenticate(ctx); err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	return c, nil
}

// Expiration reports as a human phrase when the session token expires, or how
// long ago it did, e.g. "in 59 minutes".
func (c *Client) Expiration() string {
	return c.token.RelativeExpiration(c.clock.Now())
}

// ExpiresAt returns the instant the session token expires.
func (c *Client) ExpiresAt() time.Time {
	return c.token.ExpiresAt
}

// AccessToken returns the raw bearer token, suitable for direct calls against
// the Learn API.
func (c *Client) AccessToken() string {
	return c.token.AccessToken
}

package core

import (
	"errors"
	"time"

	"github.com/xeonx/timeago"
)

var (
	// ErrMissingCredentials is returned when the application key, secret or
	// base URL passed to a client constructor is empty.
	ErrMissingCredentials = errors.New("application key, secret and base URL are required")
)

// Token is an OAuth2 access token issued by a Blackboard Learn instance for a
// REST integration. Learn hands out the same token for repeated exchanges with
// one integration key, so ExpiresAt reflects the remaining lifetime reported
// by the server, not necessarily a full token TTL.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// Expired reports whether the token lifetime has passed at the given instant.
func (t *Token) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// TTL returns the remaining token lifetime at the given instant.
// The result is negative once the token has expired.
func (t *Token) TTL(now time.Time) time.Duration {
	return t.ExpiresAt.Sub(now)
}

// RelativeExpiration renders the expiry instant as a human phrase relative to
// now, e.g. "in 59 minutes" for a live token or "4 minutes ago" for an
// expired one.
func (t *Token) RelativeExpiration(now time.Time) string {
	return timeago.English.FormatReference(t.ExpiresAt, now)
}

package syncsheet

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// ErrNotConnected reports that no usable credential is cached. Sync
// operations surface this as a "not connected" status, never as a hard
// failure.
var ErrNotConnected = errors.New("not connected to remote store")

// TokenCache holds the opaque bearer token the UI acquires through its OAuth
// popup. The token is cached with its expiry and reused until it lapses; the
// adapter never inspects its contents. It implements oauth2.TokenSource so
// the Sheets client can pull the current token per request.
type TokenCache struct {
	mu          sync.Mutex
	accessToken string
	expiry      time.Time
	now         func() time.Time
}

// NewTokenCache creates an empty, disconnected cache.
func NewTokenCache() *TokenCache {
	return &TokenCache{now: time.Now}
}

// Set stores a fresh token valid for ttl.
func (c *TokenCache) Set(accessToken string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = accessToken
	c.expiry = c.now().Add(ttl)
}

// Clear drops the cached credential (sign out).
func (c *TokenCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = ""
	c.expiry = time.Time{}
}

// Connected reports whether an unexpired token is cached.
func (c *TokenCache) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken != "" && c.now().Before(c.expiry)
}

// Token implements oauth2.TokenSource.
func (c *TokenCache) Token() (*oauth2.Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.accessToken == "" || !c.now().Before(c.expiry) {
		return nil, ErrNotConnected
	}
	return &oauth2.Token{
		AccessToken: c.accessToken,
		TokenType:   "Bearer",
		Expiry:      c.expiry,
	}, nil
}

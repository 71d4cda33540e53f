package api

import (
	"context"
	"sync"
)

// TokenSource acquires and memoizes the session's bearer token.
//
// The first call performs a single credential exchange; every later call
// returns the cached token without a network round-trip. A failed exchange
// caches nothing, so the next call retries. The mutex is held across the
// exchange so concurrent callers join the one in-flight request instead of
// racing their own. Token expiry and refresh are out of scope: the token
// lives as long as the process.
type TokenSource struct {
	client   Client
	username string
	password string

	mu    sync.Mutex
	token string
}

// NewTokenSource returns a TokenSource exchanging the given session
// credentials via client.
func NewTokenSource(client Client, username, password string) *TokenSource {
	return &TokenSource{client: client, username: username, password: password}
}

// Token returns the cached session token, performing the credential exchange
// on first use.
func (t *TokenSource) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" {
		return t.token, nil
	}

	token, err := t.client.ExchangeToken(ctx, t.username, t.password)
	if err != nil {
		return "", err
	}
	t.token = token
	return token, nil
}

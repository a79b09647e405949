package domain

import "errors"

var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side record behind a session cookie. The token that
// keys the record never appears here; it lives only in the cookie and in the
// session store's keyspace.
type Session struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

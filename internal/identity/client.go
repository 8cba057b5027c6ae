// Package identity resolves the current viewer's session from the hosted
// identity API, and pairs it with the viewer's consent record.
package identity

import (
	"context"
	"errors"
)

// User is the authenticated identity returned by the lookup.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ErrUnauthenticated marks a lookup that completed but found no
// authenticated viewer.
var ErrUnauthenticated = errors.New("identity: not authenticated")

// Client performs the identity lookup against the backend.
type Client interface {
	CurrentUser(ctx context.Context) (User, error)
}

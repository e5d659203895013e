// Package session carries the authenticated caller through a request.
//
// A Session is built by the API's auth middleware from a verified access
// token and stored in the request context. Handlers and services receive it
// explicitly; nothing in the server reads identity from package state.
package session

import (
	"context"

	"github.com/dmitrijs2005/adminpanel/internal/common"
	"github.com/dmitrijs2005/adminpanel/internal/server/auth"
)

// Session identifies the caller of a request.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the caller holds the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == common.RoleAdmin
}

// FromClaims builds a Session from verified token claims. An empty role is
// treated as the implicit user role.
func FromClaims(c *auth.Claims) *Session {
	role := c.Role
	if role == "" {
		role = common.RoleUser
	}
	return &Session{UserID: c.UserID, Email: c.Email, Role: role}
}

type ctxKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}

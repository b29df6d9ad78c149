// Package session carries the authenticated identity of a request.
//
// Sessions are resolved once by middleware from an opaque token and then
// passed explicitly into workflows; nothing below the HTTP layer reads
// ambient request state.
package session

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/hongminglow/techjobbkk/internal/models"
)

// ErrNoSession indicates the token is unknown, expired, or malformed.
var ErrNoSession = errors.New("no session")

// Session is the identity bound to a browser session.
type Session struct {
	UserID int64       `json:"user_id"`
	Role   models.Role `json:"role"`
}

// Store issues and resolves session tokens.
type Store interface {
	Issue(ctx context.Context, s Session) (string, error)
	Lookup(ctx context.Context, token string) (Session, error)
	Revoke(ctx context.Context, token string) error
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by NewContext, or nil when the
// request is anonymous.
func FromContext(ctx context.Context) *Session {
	s, ok := ctx.Value(ctxKey{}).(Session)
	if !ok {
		return nil
	}
	return &s
}

// CookieName is the cookie carrying the session token.
const CookieName = "session"

// TokenFromRequest returns the bearer token or, failing that, the session
// cookie value. It returns "" when neither is present.
func TokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}

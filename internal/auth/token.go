package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hongminglow/techjobbkk/internal/models"
	"github.com/hongminglow/techjobbkk/internal/session"
)

// Ensure TokenManager satisfies the session.Store interface at compile time.
var _ session.Store = (*TokenManager)(nil)

// Claims is the JWT payload of a session token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed JWT session tokens.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a manager with the provided secret, issuer, and lifetime.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Generate issues a signed JWT string for the provided user.
func (t *TokenManager) Generate(user models.User) (string, error) {
	return t.Issue(context.Background(), session.Session{UserID: user.ID, Role: user.Role})
}

// Issue signs a token carrying the session's user id and role.
func (t *TokenManager) Issue(_ context.Context, s session.Session) (string, error) {
	now := t.now()
	claims := Claims{
		Role: string(s.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   strconv.FormatInt(s.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Lookup verifies the token and returns the session it carries.
// Any verification failure is reported as session.ErrNoSession.
func (t *TokenManager) Lookup(_ context.Context, token string) (session.Session, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithIssuer(t.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !parsed.Valid {
		return session.Session{}, fmt.Errorf("%w: %v", session.ErrNoSession, err)
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return session.Session{}, fmt.Errorf("%w: bad subject %q", session.ErrNoSession, claims.Subject)
	}
	return session.Session{UserID: userID, Role: models.ParseRole(claims.Role)}, nil
}

// Revoke is a no-op: JWT sessions end when they expire.
func (t *TokenManager) Revoke(context.Context, string) error {
	return nil
}

package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hongminglow/techjobbkk/internal/models"
	"github.com/hongminglow/techjobbkk/internal/session"
)

type stubStore struct {
	sessions map[string]session.Session
	err      error
}

func (s stubStore) Issue(context.Context, session.Session) (string, error) { return "", nil }
func (s stubStore) Revoke(context.Context, string) error                    { return nil }
func (s stubStore) Lookup(_ context.Context, token string) (session.Session, error) {
	if s.err != nil {
		return session.Session{}, s.err
	}
	sess, ok := s.sessions[token]
	if !ok {
		return session.Session{}, session.ErrNoSession
	}
	return sess, nil
}

func captureSession(got **session.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = session.FromContext(r.Context())
	})
}

func TestSession(t *testing.T) {
	store := stubStore{sessions: map[string]session.Session{
		"good": {UserID: 7, Role: models.RoleCompany},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name  string
		token string
		want  *session.Session
	}{
		{"no token", "", nil},
		{"unknown token", "bad", nil},
		{"valid token", "good", &session.Session{UserID: 7, Role: models.RoleCompany}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got *session.Session
			h := Session(store, logger, captureSession(&got))
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.token != "" {
				r.Header.Set("Authorization", "Bearer "+tc.token)
			}
			h.ServeHTTP(httptest.NewRecorder(), r)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSession_StoreErrorIsLoggedAndAnonymous(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	var got *session.Session
	h := Session(stubStore{err: errors.New("redis down")}, logger, captureSession(&got))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Nil(t, got)
	assert.Contains(t, buf.String(), "session lookup failed")
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := Logging(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/jobs/1", nil))

	out := buf.String()
	assert.Contains(t, out, "path=/jobs/1")
	assert.Contains(t, out, "status=418")
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://app.example"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodOptions, "/profile", nil)
	r.Header.Set("Origin", "https://APP.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://APP.example", rec.Header().Get("Access-Control-Allow-Origin"))

	r = httptest.NewRequest(http.MethodGet, "/profile", nil)
	r.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_WildcardEchoesOrigin(t *testing.T) {
	h := CORS([]string{"*"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest(http.MethodGet, "/nav", nil)
	r.Header.Set("Origin", "https://any.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	assert.Equal(t, "https://any.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

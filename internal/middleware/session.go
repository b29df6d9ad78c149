package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hongminglow/techjobbkk/internal/session"
)

// Session resolves the request's session token and, when valid, stores the
// session in the request context. Requests without a valid token continue
// anonymously; rejecting them is up to each handler.
func Session(store session.Store, logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := session.TokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		sess, err := store.Lookup(r.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				logger.ErrorContext(r.Context(), "session lookup failed", slog.Any("error", err))
			}
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
	})
}

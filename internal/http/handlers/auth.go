package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/techjobbkk/internal/http/respond"
	"github.com/hongminglow/techjobbkk/internal/models/dto"
	"github.com/hongminglow/techjobbkk/internal/nav"
	"github.com/hongminglow/techjobbkk/internal/session"
	"github.com/hongminglow/techjobbkk/internal/storage"
)

// AuthHandler owns the login/logout endpoints that issue and revoke sessions.
type AuthHandler struct {
	store    storage.UserStore
	sessions session.Store
	logger   *slog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, sessions session.Store, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{store: store, sessions: sessions, logger: logger}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/login", h.handleLogin)
	mux.HandleFunc("/logout", h.handleLogout)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respond.MethodNotAllowed(w, http.MethodPost)
		return
	}
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || strings.TrimSpace(req.Password) == "" {
		respond.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}
	user, err := h.store.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.ErrorContext(r.Context(), "login: fetch user", slog.String("email", email), slog.Any("error", err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respond.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	sess := session.Session{UserID: user.ID, Role: user.Role}
	token, err := h.sessions.Issue(r.Context(), sess)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "login: issue session", slog.Int64("user_id", user.ID), slog.Any("error", err))
		respond.Error(w, http.StatusInternalServerError, "failed to start session")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respond.JSON(w, http.StatusOK, "login successful", dto.LoginResponse{
		Token: token,
		User:  user,
		Nav:   navResponse(nav.Resolve(&sess)),
	})
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respond.MethodNotAllowed(w, http.MethodPost)
		return
	}
	if token := session.TokenFromRequest(r); token != "" {
		if err := h.sessions.Revoke(r.Context(), token); err != nil {
			h.logger.ErrorContext(r.Context(), "logout: revoke session", slog.Any("error", err))
			respond.Error(w, http.StatusInternalServerError, "failed to end session")
			return
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	respond.JSON(w, http.StatusOK, "logged out", navResponse(nav.Anonymous))
}

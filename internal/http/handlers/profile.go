package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hongminglow/techjobbkk/internal/http/respond"
	"github.com/hongminglow/techjobbkk/internal/models"
	"github.com/hongminglow/techjobbkk/internal/models/dto"
	"github.com/hongminglow/techjobbkk/internal/profile"
	"github.com/hongminglow/techjobbkk/internal/session"
	"github.com/hongminglow/techjobbkk/internal/storage"
)

// LogoLinker resolves a stored logo reference into a browser-loadable URL.
type LogoLinker interface {
	LogoURL(ctx context.Context, key string) (string, error)
}

// ProfileHandler serves the profile display and edit endpoints.
type ProfileHandler struct {
	users   storage.UserStore
	service *profile.Service
	logos   LogoLinker
	logger  *slog.Logger
}

// NewProfileHandler constructs the handler. logos may be nil, in which case
// the raw logo reference is returned.
func NewProfileHandler(users storage.UserStore, service *profile.Service, logos LogoLinker, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{users: users, service: service, logos: logos, logger: logger}
}

// Register attaches profile routes to the mux.
func (h *ProfileHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/profile", h.handle)
}

func (h *ProfileHandler) handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleShow(w, r)
	case http.MethodPut, http.MethodPost:
		h.handleUpdate(w, r)
	default:
		respond.MethodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodPost)
	}
}

func (h *ProfileHandler) handleShow(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		respond.Error(w, http.StatusUnauthorized, "login required")
		return
	}
	user, err := h.users.FindByID(r.Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "profile: fetch user", slog.Int64("user_id", sess.UserID), slog.Any("error", err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch profile")
		return
	}
	respond.JSON(w, http.StatusOK, "ok", dto.ProfileResponse{User: user, LogoURL: h.logoURL(r.Context(), user.Logo)})
}

func (h *ProfileHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	out := h.service.Submit(r.Context(), session.FromContext(r.Context()), submittedProfile(req))
	switch out.Status {
	case profile.Unauthenticated:
		respond.Error(w, http.StatusUnauthorized, "login required")
	case profile.ValidationFailed:
		respond.Error(w, http.StatusUnprocessableEntity, out.Reason)
	case profile.NoChange:
		respond.JSON(w, http.StatusOK, "no changes detected in the profile", out.Profile)
	case profile.Updated:
		respond.JSON(w, http.StatusOK, "profile updated successfully", out.Profile)
	default:
		h.logger.ErrorContext(r.Context(), "profile: update failed", slog.Any("error", out.Err))
		respond.Error(w, http.StatusInternalServerError, "update failed")
	}
}

func (h *ProfileHandler) logoURL(ctx context.Context, key string) string {
	if h.logos == nil {
		return key
	}
	link, err := h.logos.LogoURL(ctx, key)
	if err != nil {
		h.logger.WarnContext(ctx, "profile: presign logo", slog.String("key", key), slog.Any("error", err))
		return ""
	}
	return link
}

func submittedProfile(req dto.ProfileRequest) models.Profile {
	p := req.Profile
	if p.Email == "" {
		p.Email = req.UserEmail
	}
	if p.Phone == "" {
		p.Phone = req.UserPhone
	}
	return p
}

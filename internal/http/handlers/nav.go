package handlers

import (
	"net/http"

	"github.com/hongminglow/techjobbkk/internal/http/respond"
	"github.com/hongminglow/techjobbkk/internal/models/dto"
	"github.com/hongminglow/techjobbkk/internal/nav"
	"github.com/hongminglow/techjobbkk/internal/session"
)

// NavHandler reports which navigation bar the caller should see.
type NavHandler struct{}

func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

// Register wires the handler into a ServeMux.
func (h *NavHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/nav", h.handle)
}

func (h *NavHandler) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respond.MethodNotAllowed(w, http.MethodGet)
		return
	}
	variant := nav.Resolve(session.FromContext(r.Context()))
	respond.JSON(w, http.StatusOK, "ok", navResponse(variant))
}

func navResponse(v nav.Variant) dto.NavResponse {
	links := nav.Links(v)
	out := dto.NavResponse{Variant: v.String(), Links: make([]dto.NavLink, 0, len(links))}
	for _, l := range links {
		out.Links = append(out.Links, dto.NavLink{Label: l.Label, Path: l.Path})
	}
	return out
}

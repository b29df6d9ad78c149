package handlers

import (
	"log/slog"
	"net/http"

	"github.com/hongminglow/techjobbkk/internal/http/respond"
	"github.com/hongminglow/techjobbkk/internal/jobs"
	"github.com/hongminglow/techjobbkk/internal/models/dto"
	"github.com/hongminglow/techjobbkk/internal/session"
)

// JobHandler serves the job detail endpoint.
type JobHandler struct {
	service *jobs.Service
	logger  *slog.Logger
}

func NewJobHandler(service *jobs.Service, logger *slog.Logger) *JobHandler {
	return &JobHandler{service: service, logger: logger}
}

// Register attaches job routes to the mux. The id is taken from the path,
// or from the job_id query parameter on /jobs.
func (h *JobHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/jobs", h.handle)
	mux.HandleFunc("/jobs/{id}", h.handle)
}

func (h *JobHandler) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respond.MethodNotAllowed(w, http.MethodGet)
		return
	}
	if session.FromContext(r.Context()) == nil {
		respond.Error(w, http.StatusUnauthorized, "login required")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		id = r.URL.Query().Get("job_id")
	}

	out := h.service.View(r.Context(), id)
	switch out.Status {
	case jobs.MissingID:
		respond.Error(w, http.StatusBadRequest, "job_id is required")
	case jobs.PostingNotFound:
		if out.Err != nil {
			h.logger.ErrorContext(r.Context(), "jobs: fetch posting", slog.String("job_id", id), slog.Any("error", out.Err))
			respond.Error(w, http.StatusInternalServerError, "failed to fetch job")
			return
		}
		respond.Error(w, http.StatusNotFound, "job not found")
	case jobs.OwnerNotFound:
		respond.JSON(w, http.StatusOK, "company not found", dto.JobResponse{Job: out.Posting})
	default:
		respond.JSON(w, http.StatusOK, "ok", dto.JobResponse{
			OwnerName:  out.OwnerName,
			OwnerFound: true,
			Job:        out.Posting,
		})
	}
}

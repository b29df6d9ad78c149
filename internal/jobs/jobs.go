// Package jobs resolves a single job posting for display.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hongminglow/techjobbkk/internal/models"
	"github.com/hongminglow/techjobbkk/internal/storage"
)

// Status is the kind of result a lookup produced.
type Status int

const (
	MissingID Status = iota
	PostingNotFound
	// OwnerNotFound means the posting exists and is renderable but its
	// company could not be named.
	OwnerNotFound
	Found
)

func (s Status) String() string {
	switch s {
	case MissingID:
		return "missing id"
	case PostingNotFound:
		return "posting not found"
	case OwnerNotFound:
		return "owner not found"
	case Found:
		return "found"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of View. Text fields are raw and must be escaped by
// whatever renders them.
type Outcome struct {
	Status    Status
	OwnerName string
	Posting   models.Job
	// Err is set when the store failed rather than missed.
	Err error
}

// Renderable reports whether the posting details can be shown.
func (o Outcome) Renderable() bool {
	return o.Status == Found || o.Status == OwnerNotFound
}

// Service looks up postings.
type Service struct {
	jobs storage.JobStore
}

func NewService(jobs storage.JobStore) *Service {
	return &Service{jobs: jobs}
}

// View fetches the posting identified by rawID.
func (s *Service) View(ctx context.Context, rawID string) Outcome {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return Outcome{Status: MissingID}
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return Outcome{Status: PostingNotFound}
	}

	listing, err := s.jobs.FindWithOwnerName(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Outcome{Status: PostingNotFound}
		}
		return Outcome{Status: PostingNotFound, Err: err}
	}
	if !listing.OwnerFound {
		return Outcome{Status: OwnerNotFound, Posting: listing.Job}
	}
	return Outcome{Status: Found, OwnerName: listing.OwnerName, Posting: listing.Job}
}

package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/techjobbkk/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures user persistence operations needed by handlers and workflows.
type UserStore interface {
	FindByID(ctx context.Context, id int64) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	// UpdateProfile overwrites all nine profile fields in a single write.
	UpdateProfile(ctx context.Context, id int64, profile models.Profile) error
}

// JobStore captures read access to job postings.
type JobStore interface {
	FindWithOwnerName(ctx context.Context, id int64) (models.JobListing, error)
}

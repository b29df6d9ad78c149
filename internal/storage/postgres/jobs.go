package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/techjobbkk/internal/models"
	"github.com/hongminglow/techjobbkk/internal/storage"
)

// FindWithOwnerName fetches a posting and its owner's first name. A posting
// whose owner row is missing is still returned, with OwnerFound false.
func (s *Store) FindWithOwnerName(ctx context.Context, id int64) (models.JobListing, error) {
	const query = `
	SELECT j.job_id, j.user_id, j.title, j.description, j.welfare, j.contact,
		u.user_id IS NOT NULL, COALESCE(u.first_name, '')
	FROM jobs j
	LEFT JOIN users u ON u.user_id = j.user_id
	WHERE j.job_id = $1;
	`
	var l models.JobListing
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&l.Job.ID, &l.Job.OwnerID, &l.Job.Title, &l.Job.Description, &l.Job.Welfare, &l.Job.Contact,
		&l.OwnerFound, &l.OwnerName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.JobListing{}, storage.ErrNotFound
		}
		return models.JobListing{}, fmt.Errorf("find job %d: %w", id, err)
	}
	return l, nil
}

// Package memory is an in-process implementation of the storage interfaces,
// used for local runs without Postgres and as a test double.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hongminglow/techjobbkk/internal/models"
	"github.com/hongminglow/techjobbkk/internal/storage"
)

var (
	_ storage.UserStore = (*Store)(nil)
	_ storage.JobStore  = (*Store)(nil)
)

// Store keeps users and jobs in maps guarded by a RWMutex.
type Store struct {
	mu     sync.RWMutex
	users  map[int64]models.User
	jobs   map[int64]models.Job
	writes int

	// FailUpdates, when set, is returned by UpdateProfile.
	FailUpdates error
}

func New() *Store {
	return &Store{
		users: make(map[int64]models.User),
		jobs:  make(map[int64]models.Job),
	}
}

// PutUser inserts or replaces a user.
func (s *Store) PutUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
}

// PutJob inserts or replaces a posting. The owner need not exist.
func (s *Store) PutJob(job models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

// Writes reports how many profile updates were applied.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

func (s *Store) FindByID(_ context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (s *Store) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if strings.EqualFold(user.Profile.Email, email) {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (s *Store) UpdateProfile(_ context.Context, id int64, profile models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailUpdates != nil {
		return s.FailUpdates
	}
	user, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	for otherID, other := range s.users {
		if otherID != id && strings.EqualFold(other.Profile.Email, profile.Email) {
			return fmt.Errorf("update profile: email %q: %w", profile.Email, storage.ErrAlreadyExists)
		}
	}
	user.Profile = profile
	s.users[id] = user
	s.writes++
	return nil
}

func (s *Store) FindWithOwnerName(_ context.Context, id int64) (models.JobListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return models.JobListing{}, storage.ErrNotFound
	}
	listing := models.JobListing{Job: job}
	if owner, ok := s.users[job.OwnerID]; ok {
		listing.OwnerName = owner.Profile.FirstName
		listing.OwnerFound = true
	}
	return listing, nil
}

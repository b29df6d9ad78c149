// Package profile implements change-aware profile editing: a submission is
// validated, compared field by field with the stored record, and written
// only when something differs.
package profile

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hongminglow/techjobbkk/internal/models"
	"github.com/hongminglow/techjobbkk/internal/session"
	"github.com/hongminglow/techjobbkk/internal/storage"
)

// Status is the kind of result a submission produced.
type Status int

const (
	Unauthenticated Status = iota
	ValidationFailed
	NoChange
	Updated
	PersistenceFailed
)

func (s Status) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case ValidationFailed:
		return "validation failed"
	case NoChange:
		return "no change"
	case Updated:
		return "updated"
	case PersistenceFailed:
		return "persistence failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of Submit.
type Outcome struct {
	Status Status
	// Reason names the first failed requirement when Status is ValidationFailed.
	Reason string
	// Profile is the stored profile after the call: the new values when
	// Status is Updated, the unchanged values when it is NoChange.
	Profile models.Profile
	// Err is the store error behind PersistenceFailed.
	Err error
}

// Service runs profile submissions against a user store.
type Service struct {
	users    storage.UserStore
	validate *validator.Validate
}

// NewService constructs the workflow.
func NewService(users storage.UserStore) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &Service{users: users, validate: v}
}

// Submit applies a profile edit for the session's user.
func (s *Service) Submit(ctx context.Context, sess *session.Session, submitted models.Profile) Outcome {
	if sess == nil {
		return Outcome{Status: Unauthenticated}
	}

	current, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Outcome{Status: ValidationFailed, Reason: "no such user"}
		}
		return Outcome{Status: PersistenceFailed, Err: fmt.Errorf("load user %d: %w", sess.UserID, err)}
	}

	submitted = submitted.Trimmed()
	if reason := s.check(submitted); reason != "" {
		return Outcome{Status: ValidationFailed, Reason: reason}
	}

	stored := current.Profile.Trimmed()
	if stored == submitted {
		return Outcome{Status: NoChange, Profile: stored}
	}

	if err := s.users.UpdateProfile(ctx, sess.UserID, submitted); err != nil {
		return Outcome{Status: PersistenceFailed, Err: err}
	}
	return Outcome{Status: Updated, Profile: submitted}
}

// check returns a message for the first failing field, or "" when p is valid.
func (s *Service) check(p models.Profile) string {
	err := s.validate.Struct(p)
	if err == nil {
		return ""
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "datetime":
		return fe.Field() + " must be a date in YYYY-MM-DD form"
	default:
		return fe.Field() + " is invalid"
	}
}

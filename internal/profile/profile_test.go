package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/techjobbkk/internal/models"
	"github.com/hongminglow/techjobbkk/internal/session"
	"github.com/hongminglow/techjobbkk/internal/storage"
	"github.com/hongminglow/techjobbkk/internal/storage/memory"
)

func samProfile() models.Profile {
	return models.Profile{
		FirstName:   "Sam",
		LastName:    "Chai",
		Birthday:    "1990-01-02",
		Address:     "1 Main Rd",
		Subdistrict: "Silom",
		District:    "Bang Rak",
		PostalCode:  "10500",
		Email:       "sam@x.com",
		Phone:       "0812345678",
	}
}

func setup(t *testing.T) (*Service, *memory.Store, *session.Session) {
	t.Helper()
	store := memory.New()
	store.PutUser(models.User{ID: 1, Role: models.RoleApplicant, Profile: samProfile()})
	return NewService(store), store, &session.Session{UserID: 1, Role: models.RoleApplicant}
}

func storedProfile(t *testing.T, store *memory.Store) models.Profile {
	t.Helper()
	u, err := store.FindByID(context.Background(), 1)
	require.NoError(t, err)
	return u.Profile
}

func TestSubmit_Unauthenticated(t *testing.T) {
	svc, store, _ := setup(t)

	out := svc.Submit(context.Background(), nil, samProfile())

	assert.Equal(t, Unauthenticated, out.Status)
	assert.Zero(t, store.Writes())
}

func TestSubmit_UnknownUser(t *testing.T) {
	svc, store, _ := setup(t)

	out := svc.Submit(context.Background(), &session.Session{UserID: 404}, samProfile())

	assert.Equal(t, ValidationFailed, out.Status)
	assert.Equal(t, "no such user", out.Reason)
	assert.Zero(t, store.Writes())
}

func TestSubmit_IdenticalValuesAreNoChange(t *testing.T) {
	svc, store, sess := setup(t)

	out := svc.Submit(context.Background(), sess, samProfile())

	assert.Equal(t, NoChange, out.Status)
	assert.Equal(t, samProfile(), out.Profile)
	assert.Zero(t, store.Writes(), "no-op submission must not write")
}

func TestSubmit_SurroundingWhitespaceIsNoChange(t *testing.T) {
	svc, store, sess := setup(t)
	p := samProfile()
	p.FirstName = "  Sam "
	p.Email = "\tsam@x.com\n"
	p.Birthday = " 1990-01-02"

	out := svc.Submit(context.Background(), sess, p)

	assert.Equal(t, NoChange, out.Status)
	assert.Zero(t, store.Writes())
}

func TestSubmit_ChangedFirstNameUpdates(t *testing.T) {
	svc, store, sess := setup(t)
	p := samProfile()
	p.FirstName = "Samuel"

	out := svc.Submit(context.Background(), sess, p)

	require.Equal(t, Updated, out.Status)
	assert.Equal(t, p, out.Profile)
	assert.Equal(t, "Samuel", storedProfile(t, store).FirstName)
	assert.Equal(t, 1, store.Writes())
}

func TestSubmit_SecondIdenticalSubmitIsNoChange(t *testing.T) {
	svc, store, sess := setup(t)
	p := samProfile()
	p.District = "Sathon"

	assert.Equal(t, Updated, svc.Submit(context.Background(), sess, p).Status)
	assert.Equal(t, NoChange, svc.Submit(context.Background(), sess, p).Status)
	assert.Equal(t, 1, store.Writes())
}

func TestSubmit_AnySingleFieldChangeIsNotNoChange(t *testing.T) {
	edits := map[string]func(*models.Profile){
		"first_name":  func(p *models.Profile) { p.FirstName = "Samuel" },
		"last_name":   func(p *models.Profile) { p.LastName = "Chaiyo" },
		"birthday":    func(p *models.Profile) { p.Birthday = "1990-01-03" },
		"address":     func(p *models.Profile) { p.Address = "2 Main Rd" },
		"subdistrict": func(p *models.Profile) { p.Subdistrict = "Suriyawong" },
		"district":    func(p *models.Profile) { p.District = "Sathon" },
		"postal_code": func(p *models.Profile) { p.PostalCode = "10120" },
		"email":       func(p *models.Profile) { p.Email = "Sam@x.com" },
		"phone":       func(p *models.Profile) { p.Phone = "0899999999" },
	}
	for field, edit := range edits {
		t.Run(field, func(t *testing.T) {
			svc, store, sess := setup(t)
			p := samProfile()
			edit(&p)

			out := svc.Submit(context.Background(), sess, p)

			assert.Equal(t, Updated, out.Status)
			assert.Equal(t, p, storedProfile(t, store), "all nine fields are written")
		})
	}
}

func TestSubmit_ValidationFailuresLeaveStoreUntouched(t *testing.T) {
	tests := []struct {
		name   string
		edit   func(*models.Profile)
		reason string
	}{
		{"missing first name", func(p *models.Profile) { p.FirstName = "" }, "first_name is required"},
		{"blank last name", func(p *models.Profile) { p.LastName = "   " }, "last_name is required"},
		{"missing birthday", func(p *models.Profile) { p.Birthday = "" }, "birthday is required"},
		{"bad birthday", func(p *models.Profile) { p.Birthday = "02/01/1990" }, "birthday must be a date in YYYY-MM-DD form"},
		{"missing address", func(p *models.Profile) { p.Address = "" }, "address is required"},
		{"missing subdistrict", func(p *models.Profile) { p.Subdistrict = "" }, "subdistrict is required"},
		{"missing district", func(p *models.Profile) { p.District = "" }, "district is required"},
		{"missing postal code", func(p *models.Profile) { p.PostalCode = "" }, "postal_code is required"},
		{"missing email", func(p *models.Profile) { p.Email = "" }, "email is required"},
		{"malformed email", func(p *models.Profile) { p.Email = "sam-at-x" }, "email must be a valid email address"},
		{"missing phone", func(p *models.Profile) { p.Phone = " " }, "phone is required"},
		{"first failure wins", func(p *models.Profile) { p.Email = "bad"; p.LastName = "" }, "last_name is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, store, sess := setup(t)
			p := samProfile()
			tc.edit(&p)

			out := svc.Submit(context.Background(), sess, p)

			assert.Equal(t, ValidationFailed, out.Status)
			assert.Equal(t, tc.reason, out.Reason)
			assert.Zero(t, store.Writes())
			assert.Equal(t, samProfile(), storedProfile(t, store))
		})
	}
}

func TestSubmit_PersistenceFailure(t *testing.T) {
	svc, store, sess := setup(t)
	store.FailUpdates = errors.New("connection reset")
	p := samProfile()
	p.Phone = "0899999999"

	out := svc.Submit(context.Background(), sess, p)

	assert.Equal(t, PersistenceFailed, out.Status)
	assert.EqualError(t, out.Err, "connection reset")
	assert.Equal(t, samProfile(), storedProfile(t, store))
}

func TestSubmit_DuplicateEmailIsPersistenceFailure(t *testing.T) {
	svc, store, sess := setup(t)
	other := samProfile()
	other.Email = "kim@x.com"
	store.PutUser(models.User{ID: 2, Profile: other})
	p := samProfile()
	p.Email = "kim@x.com"

	out := svc.Submit(context.Background(), sess, p)

	assert.Equal(t, PersistenceFailed, out.Status)
	assert.ErrorIs(t, out.Err, storage.ErrAlreadyExists)
}

type failingReads struct{ storage.UserStore }

func (failingReads) FindByID(context.Context, int64) (models.User, error) {
	return models.User{}, errors.New("db down")
}

func TestSubmit_ReadFailure(t *testing.T) {
	svc := NewService(failingReads{})

	out := svc.Submit(context.Background(), &session.Session{UserID: 1}, samProfile())

	assert.Equal(t, PersistenceFailed, out.Status)
	assert.ErrorContains(t, out.Err, "db down")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "no change", NoChange.String())
	assert.Equal(t, "Status(42)", Status(42).String())
}

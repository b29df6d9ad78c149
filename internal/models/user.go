package models

import (
	"strings"
	"time"
)

// Profile holds the nine editable fields of a user record.
// Field order is the order validation failures are reported in.
type Profile struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Birthday    string `json:"birthday" validate:"required,datetime=2006-01-02"`
	Address     string `json:"address" validate:"required"`
	Subdistrict string `json:"subdistrict" validate:"required"`
	District    string `json:"district" validate:"required"`
	PostalCode  string `json:"postal_code" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (p Profile) Trimmed() Profile {
	return Profile{
		FirstName:   strings.TrimSpace(p.FirstName),
		LastName:    strings.TrimSpace(p.LastName),
		Birthday:    strings.TrimSpace(p.Birthday),
		Address:     strings.TrimSpace(p.Address),
		Subdistrict: strings.TrimSpace(p.Subdistrict),
		District:    strings.TrimSpace(p.District),
		PostalCode:  strings.TrimSpace(p.PostalCode),
		Email:       strings.TrimSpace(p.Email),
		Phone:       strings.TrimSpace(p.Phone),
	}
}

// User captures application-facing fields for an authenticated identity.
type User struct {
	ID           int64     `json:"id"`
	Role         Role      `json:"role"`
	Profile      Profile   `json:"profile"`
	Logo         string    `json:"logo,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

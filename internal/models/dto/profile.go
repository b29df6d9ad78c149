package dto

import "github.com/hongminglow/techjobbkk/internal/models"

// ProfileRequest is the edit-profile form body. The original form posted the
// email and phone as user_email and user_phone, both spellings are accepted.
type ProfileRequest struct {
	models.Profile
	UserEmail string `json:"user_email"`
	UserPhone string `json:"user_phone"`
}

type ProfileResponse struct {
	User    models.User `json:"user"`
	LogoURL string      `json:"logo_url,omitempty"`
}

type JobResponse struct {
	OwnerName  string     `json:"owner_name"`
	OwnerFound bool       `json:"owner_found"`
	Job        models.Job `json:"job"`
}

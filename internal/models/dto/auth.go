package dto

import "github.com/hongminglow/techjobbkk/internal/models"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
	Nav   NavResponse `json:"nav"`
}

type NavLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type NavResponse struct {
	Variant string    `json:"variant"`
	Links   []NavLink `json:"links"`
}

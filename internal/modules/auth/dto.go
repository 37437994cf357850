package auth

import "github.com/criscode097/vacarent/internal/domain"

type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     string  `json:"role" binding:"required,oneof=guest host"`
	Country  string  `json:"country"`
	Rating   float64 `json:"rating"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User  domain.PersonInfo `json:"user"`
	Token string            `json:"token"`
}

package handler

import (
	"github.com/messhub/feedback-system/internal/core/domain"
	"github.com/messhub/feedback-system/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type loginResponse struct {
	Message string           `json:"message"`
	User    *domain.User     `json:"user"`
	Tokens  *ports.TokenPair `json:"tokens"`
}

type profileResponse struct {
	User *domain.User `json:"user"`
}

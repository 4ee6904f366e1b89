package http

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Status    string    `json:"status"`
	Error     ErrorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

type IdentityDTO struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Surname, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type RegisterResponse struct {
	Status string `json:"status"`
	Data   struct {
		UserID    string `json:"user_id"`
		IsAdmin   bool   `json:"is_admin"`
		CreatedAt string `json:"created_at"`
	} `json:"data"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type LoginResponse struct {
	Status string `json:"status"`
	Data   struct {
		User IdentityDTO `json:"user"`
	} `json:"data"`
}

type LogoutResponse struct {
	Status string `json:"status"`
}

type MeResponse struct {
	User *IdentityDTO `json:"user"`
}

package errors

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid moderation request")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
)

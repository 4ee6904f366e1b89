package errors

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrTitleRequired   = errors.New("title is required")
	ErrProductNotFound = errors.New("product not found")
)

package shared

import "errors"

var (
	// Configuration errors
	ErrMissingConfig = errors.New("configuration not found")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Store errors
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")

	// Input validation errors
	ErrInvalidArgument = errors.New("invalid argument")
)

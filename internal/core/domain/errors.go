package domain

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
	ErrEmailInUse         = errors.New("email already in use")
	ErrMessageTooLong     = errors.New("message content too long")
	ErrForbidden          = errors.New("access forbidden")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrClientNotFound     = errors.New("client not found")
)

package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired session token")
	ErrCompanyRequired    = errors.New("company name is required")
	ErrNameRequired       = errors.New("name is required")
)

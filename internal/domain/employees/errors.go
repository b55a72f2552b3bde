package employees

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrInvalidRole   = errors.New("unknown role")
	ErrInvalidStatus = errors.New("unknown attendance status")
	ErrWeakPassword  = errors.New("password must be at least 8 characters")
)

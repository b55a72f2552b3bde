package expenses

import "errors"

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidAmount   = errors.New("amount must not be negative")
	ErrInvalidStatus   = errors.New("invalid expense status")
)

package settings

import "errors"

var (
	ErrSettingsNotFound = errors.New("company settings not found")
	ErrDivisionNotFound = errors.New("partner division not found")
	ErrNameRequired     = errors.New("company name is required")
	ErrNegativeAmount   = errors.New("amounts cannot be negative")
)

package forms

import "errors"

var (
	ErrFormNotFound    = errors.New("form not found")
	ErrFormInactive    = errors.New("form is not accepting submissions")
	ErrInvalidField    = errors.New("field needs a label and a known type")
	ErrNoSelectOptions = errors.New("select field needs at least one option")
	ErrTitleRequired   = errors.New("form title is required")
)

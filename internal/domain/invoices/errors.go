package invoices

import "errors"

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrNoItems         = errors.New("invoice needs at least one item")
	ErrInvalidItem     = errors.New("invoice item with non-positive quantity or negative price")
	ErrInvalidStatus   = errors.New("invalid invoice status")
	ErrAlreadyPaid     = errors.New("invoice already paid")
)

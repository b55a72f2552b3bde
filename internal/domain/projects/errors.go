package projects

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidStatus   = errors.New("invalid project status")
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
)

package tasks

import "errors"

var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrChecklistItemNotFound = errors.New("checklist item not found")
	ErrInvalidStatus         = errors.New("invalid task status")
	ErrInvalidPriority       = errors.New("invalid task priority")
)

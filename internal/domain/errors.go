package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrInvalidDate      = errors.New("invalid date (expected YYYY-MM-DD)")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

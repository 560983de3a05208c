package service

import "errors"

var (
	// ErrNotFound reports a task, note, skill, week or day that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation reports user input that was rejected before dispatch.
	ErrValidation = errors.New("invalid input")
)

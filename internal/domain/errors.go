package domain

import "errors"

// Domain errors.
var (
	ErrEmptyText       = errors.New("task text cannot be empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStep     = errors.New("invalid script step")
	ErrConfigExists    = errors.New("config file already exists")
	ErrNoGlobalConfDir = errors.New("global config directory not available")
)

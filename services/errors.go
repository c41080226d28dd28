package services

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrInvalidTransition = errors.New("invalid appointment transition")
	ErrInvalidDocument   = errors.New("invalid identification document")
)

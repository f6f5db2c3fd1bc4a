package repository

import "errors"

var (
	// ErrNotFound is returned when no record exists for a profile id.
	ErrNotFound = errors.New("profile not found")

	// ErrEmptyProfileID is returned when a caller passes a blank profile id.
	ErrEmptyProfileID = errors.New("profile id is empty")
)

package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrBackpressure = errors.New("backpressure")
)

// opErr annotates an error with the operation that produced it.
func opErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// opErrf annotates a sentinel with the operation and a detail error.
func opErrf(op string, kind, detail error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, detail)
}

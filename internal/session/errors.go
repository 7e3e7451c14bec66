package session

import "errors"

var (
	// ErrInvalidInput marks a time limit that is not a positive whole number of seconds.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotIdle is returned when a start is requested while a test is running or finished.
	ErrNotIdle = errors.New("session not idle")
)

package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C) or declined to
	// submit.
	ErrAborted = errors.New("tui: aborted")
	// ErrTooManyAttempts is returned when submissions keep failing validation
	// past the configured attempt limit.
	ErrTooManyAttempts = errors.New("tui: too many rejected submissions")
)

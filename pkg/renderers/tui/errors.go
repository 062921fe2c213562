package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrControllerRequired is returned when a session has nothing to submit to.
	ErrControllerRequired = errors.New("tui: submission controller is required")
)

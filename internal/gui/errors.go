package gui

import "errors"

// Registry errors. All are recoverable: the caller retries with corrected
// names. Backend failures are not wrapped in these; they propagate as-is.
var (
	ErrWindowNotFound = errors.New("window not found")
	ErrSceneNotFound  = errors.New("scene not found")
	ErrEntityNotFound = errors.New("entity not found")
	ErrNotInScene     = errors.New("entity not logged in scene")
	ErrSceneNotBound  = errors.New("scene not attached to a window")

	ErrInvalidName    = errors.New("invalid name")
	ErrWrongArchetype = errors.New("wrong archetype")
)

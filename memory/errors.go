package memory

import "errors"

var (
	// ErrRange is returned when an access falls outside the current size or
	// a pointer does not satisfy the required alignment.
	ErrRange = errors.New("memory: out of range")

	// ErrResource is returned when creation or growth would exceed the
	// maximum size or the configured resource budget.
	ErrResource = errors.New("memory: resource limit")

	// ErrStaleWindow is returned when a window is used after the memory grew.
	ErrStaleWindow = errors.New("memory: window invalidated by growth")
)

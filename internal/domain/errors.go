package domain

import "errors"

var (
	// ErrNotFound is returned when a key or id matches no entity.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput wraps malformed user input such as durations or estimates.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoRunningEntry is returned when no time entry is currently being tracked.
	ErrNoRunningEntry = errors.New("you're not working on anything right now")
	// ErrUnsupported is returned when the workspace plan lacks a feature.
	ErrUnsupported = errors.New("your account does not support this feature")
	// ErrCacheDisabled is returned by operations that need the local cache.
	ErrCacheDisabled = errors.New("caching is not enabled; set options.cache_enabled in ~/.togglrc")
)

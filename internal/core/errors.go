package core

import "errors"

var (
	// ErrModelNotFound is returned when a model key is not registered.
	ErrModelNotFound = errors.New("model not found")
	// ErrGenerationFailed wraps unexpected failures inside a generator.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrDuplicateModel is returned when a model key is registered twice.
	ErrDuplicateModel = errors.New("model already registered")
	// ErrInvalidInsanity is returned when an insanity value cannot be parsed.
	ErrInvalidInsanity = errors.New("invalid insanity value")
)

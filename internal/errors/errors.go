// Package errors provides structured error types for habitd.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	ErrModelUnavailable = errors.New("model not loaded")
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrRateLimit        = errors.New("rate limit exceeded")
)

// ArtifactError represents a failure while loading a model artifact from disk.
type ArtifactError struct {
	Path  string
	Stage string // "read", "decode", "validate"
	Err   error
}

func (e *ArtifactError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("artifact %s: %s failed: %v", e.Path, e.Stage, e.Err)
	}
	return fmt.Sprintf("artifact %s: %s failed", e.Path, e.Stage)
}

func (e *ArtifactError) Unwrap() error { return e.Err }

// NewArtifactError creates a new artifact loading error.
func NewArtifactError(path, stage string, err error) *ArtifactError {
	return &ArtifactError{Path: path, Stage: stage, Err: err}
}

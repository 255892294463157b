package application

import (
	"errors"
	"fmt"

	"ppw/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrCompilerLaunch = errors.New("compiler could not be launched")
	ErrDependencyLog  = domain.ErrDependencyLog
	ErrOutputMismatch = errors.New("compiled output differs from original")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// PhaseError reports which pipeline step failed for which input
type PhaseError struct {
	Input string
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Phase, e.Input, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

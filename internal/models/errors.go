package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAnalysisInProgress is returned when a submission arrives while one is awaiting.
	ErrAnalysisInProgress = errors.New("analysis already in progress")
	ErrSessionNotFound    = errors.New("session not found")
)

// ValidationError means one or both inputs were blank after trimming.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing information: %s", strings.Join(e.Fields, ", "))
}

// AnalysisFailure wraps an analyzer error or timeout.
type AnalysisFailure struct {
	Cause error
}

func (e *AnalysisFailure) Error() string {
	if e.Cause == nil {
		return "analysis failed"
	}
	return fmt.Sprintf("analysis failed: %v", e.Cause)
}

func (e *AnalysisFailure) Unwrap() error {
	return e.Cause
}

// Package errors provides structured error types for fhir-skills.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error codes for fhir-skills operations.
const (
	// Install errors
	CodeSourceMissing      = "SKILLS_001" // Bundled skill tree absent
	CodePermissionDenied   = "SKILLS_002" // Insufficient rights at destination
	CodeInstallFailed      = "SKILLS_003" // Any other install failure
	CodeFrontmatterInvalid = "SKILLS_004" // SKILL.md frontmatter unreadable

	// Config errors
	CodeConfigInvalid = "CONFIG_001" // Config file unreadable or malformed
)

// SkillsError is the structured error type for fhir-skills operations.
type SkillsError struct {
	Code    string         `json:"code"`              // Error code (e.g., "SKILLS_001")
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Context (path, skill, etc.)
	Cause   error          `json:"-"`                 // Wrapped error (not serialized)
}

// Error implements the error interface.
func (e *SkillsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *SkillsError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *SkillsError) WithDetail(key string, value any) *SkillsError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause wraps an underlying error.
func (e *SkillsError) WithCause(err error) *SkillsError {
	e.Cause = err
	return e
}

// MarshalJSON implements json.Marshaler with cause error message.
func (e *SkillsError) MarshalJSON() ([]byte, error) {
	type alias SkillsError
	aux := struct {
		*alias
		CauseMsg string `json:"cause,omitempty"`
	}{
		alias: (*alias)(e),
	}
	if e.Cause != nil {
		aux.CauseMsg = e.Cause.Error()
	}
	return json.Marshal(aux)
}

// New creates a new SkillsError.
func New(code, message string) *SkillsError {
	return &SkillsError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new SkillsError with formatted message.
func Newf(code, format string, args ...any) *SkillsError {
	return &SkillsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with a SkillsError.
func Wrap(code, message string, err error) *SkillsError {
	return &SkillsError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted SkillsError.
func Wrapf(code string, err error, format string, args ...any) *SkillsError {
	return &SkillsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// SourceMissing creates an error for an absent bundled skill tree.
func SourceMissing() *SkillsError {
	return New(CodeSourceMissing, "skills source directory not found in package")
}

// PermissionDenied creates an error for permission issues at the destination.
func PermissionDenied(path string, err error) *SkillsError {
	return Wrap(CodePermissionDenied, "permission denied", err).
		WithDetail("path", path)
}

// InstallFailed creates an error for any other install failure.
func InstallFailed(err error) *SkillsError {
	return Wrap(CodeInstallFailed, "installation failed", err)
}

// FrontmatterInvalid creates an error for unreadable SKILL.md frontmatter.
func FrontmatterInvalid(path string, err error) *SkillsError {
	return Wrap(CodeFrontmatterInvalid, "invalid skill frontmatter", err).
		WithDetail("path", path)
}

// ConfigInvalid creates an error for an unreadable or malformed config file.
func ConfigInvalid(path string, err error) *SkillsError {
	return Wrap(CodeConfigInvalid, "invalid config", err).
		WithDetail("path", path)
}

// HasCode checks if an error is a SkillsError with the given code.
// It handles wrapped errors by unwrapping to find a SkillsError.
func HasCode(err error, code string) bool {
	var serr *SkillsError
	if errors.As(err, &serr) {
		return serr.Code == code
	}
	return false
}

// Code returns the error code if err is a SkillsError, empty string otherwise.
// It handles wrapped errors by unwrapping to find a SkillsError.
func Code(err error) string {
	var serr *SkillsError
	if errors.As(err, &serr) {
		return serr.Code
	}
	return ""
}

// Cause returns the underlying cause if err is a SkillsError with one,
// or err itself otherwise.
func Cause(err error) error {
	var serr *SkillsError
	if errors.As(err, &serr) && serr.Cause != nil {
		return serr.Cause
	}
	return err
}

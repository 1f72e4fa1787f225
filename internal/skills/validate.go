package skills

import (
	"fmt"
	"regexp"
	"strings"
)

// namePattern matches lowercase alphanumeric with single hyphens between words
var namePattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidationError represents a single validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult holds validation errors.
type ValidationResult struct {
	Errors []ValidationError
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error implements the error interface.
func (r *ValidationResult) Error() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var messages []string
	for _, err := range r.Errors {
		messages = append(messages, err.Error())
	}

	return fmt.Sprintf("validation failed with %d error(s):\n  - %s",
		len(r.Errors), strings.Join(messages, "\n  - "))
}

// Add appends a validation error.
func (r *ValidationResult) Add(field, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Validate checks skill frontmatter for errors. dirName is the skill
// directory's base name, which the name field must match.
func (m *Meta) Validate(dirName string) *ValidationResult {
	result := &ValidationResult{}

	if m.Name == "" {
		result.Add("name", "is required")
	} else {
		if !namePattern.MatchString(m.Name) {
			result.Add("name", "must be lowercase alphanumeric with hyphens")
		}
		if m.Name != dirName {
			result.Add("name", fmt.Sprintf("must match directory name (got %q, directory is %q)", m.Name, dirName))
		}
	}

	if m.Description == "" {
		result.Add("description", "is required")
	} else if len(m.Description) > 1024 {
		result.Add("description", "must be 1024 characters or less")
	}

	if len(m.Triggers) == 0 {
		result.Add("triggers", "at least one trigger phrase is required")
	}

	return result
}

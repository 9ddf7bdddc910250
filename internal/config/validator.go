package config

import (
	"strings"

	"github.com/wesleyorama2/dotconf/internal/logger"
	"github.com/wesleyorama2/dotconf/internal/output"
)

// ValidationError represents a settings validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return e.Path + ": " + e.Message
}

// ValidationErrors collects every problem found in a Settings value.
type ValidationErrors []ValidationError

// Error joins the individual messages.
func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, err := range ve {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the settings and returns every problem found.
func (s *Settings) Validate() ValidationErrors {
	var errors ValidationErrors

	if _, err := output.ParseFormat(s.Format); err != nil {
		errors = append(errors, ValidationError{
			Path:    "format",
			Message: err.Error(),
		})
	}

	if _, err := logger.ParseLevel(s.LogLevel); err != nil {
		errors = append(errors, ValidationError{
			Path:    "log-level",
			Message: err.Error(),
		})
	}

	if s.SchemaPath != "" && strings.TrimSpace(s.SchemaPath) == "" {
		errors = append(errors, ValidationError{
			Path:    "schema",
			Message: "schema path cannot be blank",
		})
	}

	return errors
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name:     "standard error",
			err:      ValidationError{Path: "format", Message: "invalid output format 'xml'"},
			expected: "format: invalid output format 'xml'",
		},
		{
			name:     "empty path",
			err:      ValidationError{Path: "", Message: "some error"},
			expected: ": some error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Path: "format", Message: "bad"},
		{Path: "log-level", Message: "worse"},
	}

	assert.Equal(t, "format: bad; log-level: worse", errs.Error())
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		paths    []string
	}{
		{name: "defaults", settings: *Defaults()},
		{name: "yaml", settings: Settings{Format: "yaml", LogLevel: "info"}},
		{name: "bad format", settings: Settings{Format: "ini"}, paths: []string{"format"}},
		{name: "bad level", settings: Settings{LogLevel: "verbose"}, paths: []string{"log-level"}},
		{name: "blank schema", settings: Settings{SchemaPath: "   "}, paths: []string{"schema"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.settings.Validate()

			var paths []string
			for _, e := range errs {
				paths = append(paths, e.Path)
			}
			assert.Equal(t, tt.paths, paths)
		})
	}
}

package config

import (
	"fmt"
	"os"

	"github.com/wesleyorama2/dotconf/internal/lines"
)

// LoadLines reads the configuration file at path as a slice of lines.
func LoadLines(path string) ([]string, error) {
	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	defer f.Close()

	raw, err := lines.Read(f)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return raw, nil
}

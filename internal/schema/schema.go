package schema

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/wesleyorama2/dotconf/internal/lines"
	"github.com/wesleyorama2/dotconf/internal/logger"
)

// Separator splits a schema line into key and declared type.
const Separator = "->"

// Schema maps a literal configuration key to its declared type name.
// A nil Schema is valid and declares nothing.
type Schema map[string]string

// Entry is a single key/type pair of a Schema.
type Entry struct {
	Key  string
	Type string
}

// Lookup returns the declared type for the literal key.
func (s Schema) Lookup(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	t, ok := s[key]
	return t, ok
}

// Entries returns the schema entries sorted by key.
func (s Schema) Entries() []Entry {
	entries := make([]Entry, 0, len(s))
	for k, t := range s {
		entries = append(entries, Entry{Key: k, Type: t})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Validate checks value against the type declared for key, if any.
// Keys without a schema entry are accepted.
func (s Schema) Validate(key, value string) error {
	declared, ok := s.Lookup(key)
	if !ok {
		return nil
	}
	return Validate(key, value, declared)
}

// ParseLines builds a Schema from schema file lines.
// Malformed lines are logged at warn level and skipped; a later entry for
// the same key replaces an earlier one.
func ParseLines(lines []string, log *logger.Logger) Schema {
	if log == nil {
		log = logger.Nop()
	}

	s := make(Schema)
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if isSkippable(line) {
			continue
		}

		key, declared, found := strings.Cut(line, Separator)
		if !found {
			log.Warn().
				Int("line", i+1).
				Str("text", line).
				Msgf("skipping malformed schema line: missing %q", Separator)
			continue
		}

		s[strings.TrimSpace(key)] = strings.TrimSpace(declared)
	}

	return s
}

// Parse reads schema lines from r.
func Parse(r io.Reader, log *logger.Logger) (Schema, error) {
	raw, err := lines.Read(r)
	if err != nil {
		return nil, fmt.Errorf("error reading schema: %w", err)
	}

	return ParseLines(raw, log), nil
}

// LoadSchema reads and parses the schema file at path.
func LoadSchema(path string, log *logger.Logger) (Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("schema file not found: %s", path)
		}
		return nil, fmt.Errorf("error opening schema file: %w", err)
	}
	defer f.Close()

	if log != nil {
		log = log.WithField("schema", path)
	}
	return Parse(f, log)
}

// isSkippable reports whether a trimmed line is blank or a comment.
func isSkippable(line string) bool {
	return line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";")
}

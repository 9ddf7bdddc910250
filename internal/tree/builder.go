package tree

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/wesleyorama2/dotconf/internal/lines"
	"github.com/wesleyorama2/dotconf/internal/logger"
	"github.com/wesleyorama2/dotconf/internal/schema"
)

// Assignment separates a key from its value.
const Assignment = "="

// Builder turns configuration lines into a Section tree.
// A Builder can be reused; each Build starts from an empty root. It is not
// safe for concurrent use.
type Builder struct {
	schema schema.Schema
	log    *logger.Logger
}

// Option configures a Builder
type Option func(*Builder)

// NewBuilder creates a new Builder with the given options
func NewBuilder(options ...Option) *Builder {
	b := &Builder{
		log: logger.Nop(),
	}

	for _, option := range options {
		option(b)
	}

	return b
}

// WithSchema validates leaves against s while building.
func WithSchema(s schema.Schema) Option {
	return func(b *Builder) {
		b.schema = s
	}
}

// WithLogger sets the logger used for skipped-line diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// Build is shorthand for NewBuilder(WithSchema(s)).Build(lines).
func Build(lines []string, s schema.Schema) (Section, error) {
	return NewBuilder(WithSchema(s)).Build(lines)
}

// Build processes lines in order and returns the root section.
// The first conflict or validation failure aborts the build and no tree is
// returned.
func (b *Builder) Build(lines []string) (Section, error) {
	root := make(Section)
	for i, raw := range lines {
		if err := b.apply(root, i+1, raw); err != nil {
			return nil, err
		}
	}

	b.log.Debug().Int("lines", len(lines)).Int("top_level_keys", len(root)).Msg("configuration tree built")
	return root, nil
}

// BuildReader reads lines from r and builds them.
func (b *Builder) BuildReader(r io.Reader) (Section, error) {
	raw, err := lines.Read(r)
	if err != nil {
		return nil, fmt.Errorf("error reading configuration: %w", err)
	}
	return b.Build(raw)
}

func (b *Builder) apply(root Section, lineNo int, raw string) error {
	if !utf8.ValidString(raw) {
		return &LineError{Line: lineNo, Err: ErrInvalidUTF8}
	}

	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
		return nil
	}

	key, value, found := strings.Cut(line, Assignment)
	if !found {
		b.log.Debug().Int("line", lineNo).Str("text", line).Msg("skipping line without '='")
		return nil
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	path := SplitKey(key)
	parent := root
	for i, segment := range path[:len(path)-1] {
		switch child := parent[segment].(type) {
		case nil:
			next := make(Section)
			parent[segment] = next
			parent = next
		case Section:
			parent = child
		case Scalar:
			return &ConflictError{
				Line:    lineNo,
				Key:     key,
				Segment: segment,
				Path:    path[:i+1],
				Kind:    ScalarAsSection,
			}
		}
	}

	last := path[len(path)-1]
	if _, ok := parent[last].(Section); ok {
		return &ConflictError{
			Line:    lineNo,
			Key:     key,
			Segment: last,
			Path:    path,
			Kind:    SectionAsScalar,
		}
	}

	if err := b.schema.Validate(key, value); err != nil {
		return &LineError{Line: lineNo, Err: err}
	}
	parent[last] = Scalar(value)
	return nil
}

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/dotconf/internal/tree"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatJSON renders the tree as a JSON object
	FormatJSON OutputFormat = "json"
	// FormatYAML renders the tree as a YAML mapping
	FormatYAML OutputFormat = "yaml"
)

// Formats lists every supported output format.
var Formats = []OutputFormat{FormatJSON, FormatYAML}

// ParseFormat converts a format name into an OutputFormat.
// An empty name selects JSON.
func ParseFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		names := make([]string, len(Formats))
		for i, f := range Formats {
			names[i] = string(f)
		}
		return "", fmt.Errorf("invalid output format '%s', must be one of: %s", name, strings.Join(names, ", "))
	}
}

// Renderer writes a configuration tree to w.
type Renderer interface {
	Render(w io.Writer, root tree.Section) error
}

// RenderOptions controls how GetRenderer picks and configures a renderer.
type RenderOptions struct {
	Format  OutputFormat
	Compact bool
	// Color enables colored JSON; it is ignored for compact and YAML output.
	Color bool
}

// GetRenderer returns the renderer for opts.
func GetRenderer(opts RenderOptions) Renderer {
	switch opts.Format {
	case FormatYAML:
		return &YAMLRenderer{}
	default:
		if opts.Color && !opts.Compact {
			return &ColorJSONRenderer{Scheme: DefaultColorScheme()}
		}
		return &JSONRenderer{Compact: opts.Compact}
	}
}

// JSONRenderer renders Scalars as JSON strings and Sections as JSON objects.
// Object keys are sorted and HTML characters are left unescaped.
type JSONRenderer struct {
	Compact bool
}

// Render writes the tree followed by a newline.
func (r *JSONRenderer) Render(w io.Writer, root tree.Section) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !r.Compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("failed to render JSON: %w", err)
	}
	return nil
}

// MarshalJSON renders the tree as compact JSON without a trailing newline.
func MarshalJSON(v tree.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to render JSON: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// YAMLRenderer renders the tree as a YAML mapping. Scalars are always
// emitted as strings, quoted where YAML would otherwise read them as
// numbers, booleans or null.
type YAMLRenderer struct{}

// Render writes the tree as a YAML document.
func (r *YAMLRenderer) Render(w io.Writer, root tree.Section) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toYAMLNode(root)); err != nil {
		return fmt.Errorf("failed to render YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to render YAML: %w", err)
	}
	return nil
}

func toYAMLNode(v tree.Value) *yaml.Node {
	switch v := v.(type) {
	case tree.Section:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range v.Keys() {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				toYAMLNode(v[k]),
			)
		}
		return node
	case tree.Scalar:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(v)}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// ColorJSONRenderer renders indented JSON with colored keys and values.
type ColorJSONRenderer struct {
	Scheme *ColorScheme
}

// Render writes the colored document followed by a newline.
func (r *ColorJSONRenderer) Render(w io.Writer, root tree.Section) error {
	scheme := r.Scheme
	if scheme == nil {
		scheme = DefaultColorScheme()
	}

	var buf bytes.Buffer
	if err := writeColorValue(&buf, scheme, root, 0); err != nil {
		return err
	}
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}

func writeColorValue(buf *bytes.Buffer, scheme *ColorScheme, v tree.Value, depth int) error {
	switch v := v.(type) {
	case tree.Scalar:
		quoted, err := quoteJSON(string(v))
		if err != nil {
			return err
		}
		buf.WriteString(scheme.String.Sprint(quoted))
	case tree.Section:
		if len(v) == 0 {
			buf.WriteString(scheme.Punctuation.Sprint("{}"))
			return nil
		}
		buf.WriteString(scheme.Punctuation.Sprint("{"))
		buf.WriteByte('\n')
		for i, k := range v.Keys() {
			quoted, err := quoteJSON(k)
			if err != nil {
				return err
			}
			buf.WriteString(strings.Repeat("  ", depth+1))
			buf.WriteString(scheme.Key.Sprint(quoted))
			buf.WriteString(scheme.Punctuation.Sprint(":"))
			buf.WriteByte(' ')
			if err := writeColorValue(buf, scheme, v[k], depth+1); err != nil {
				return err
			}
			if i < len(v)-1 {
				buf.WriteString(scheme.Punctuation.Sprint(","))
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat("  ", depth))
		buf.WriteString(scheme.Punctuation.Sprint("}"))
	}
	return nil
}

// quoteJSON encodes s as a JSON string literal without HTML escaping.
func quoteJSON(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", fmt.Errorf("failed to encode string: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

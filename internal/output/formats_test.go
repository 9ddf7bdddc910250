package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/dotconf/internal/tree"
)

func sampleTree() tree.Section {
	return tree.Section{
		"name":  tree.Scalar("demo"),
		"port":  tree.Scalar("8080"),
		"debug": tree.Scalar("true"),
		"empty": tree.Scalar(""),
		"log": tree.Section{
			"file": tree.Section{"dir": tree.Scalar("/var/log/app")},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{input: "", want: FormatJSON},
		{input: "json", want: FormatJSON},
		{input: "JSON", want: FormatJSON},
		{input: "yaml", want: FormatYAML},
		{input: "yml", want: FormatYAML},
		{input: "toml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "json, yaml")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetRenderer(t *testing.T) {
	assert.IsType(t, &JSONRenderer{}, GetRenderer(RenderOptions{}))
	assert.IsType(t, &JSONRenderer{}, GetRenderer(RenderOptions{Format: FormatJSON, Compact: true, Color: true}))
	assert.IsType(t, &ColorJSONRenderer{}, GetRenderer(RenderOptions{Format: FormatJSON, Color: true}))
	assert.IsType(t, &YAMLRenderer{}, GetRenderer(RenderOptions{Format: FormatYAML, Color: true}))
}

func TestJSONRenderer_Pretty(t *testing.T) {
	var buf bytes.Buffer
	root := tree.Section{
		"name": tree.Scalar("demo"),
		"log":  tree.Section{"file": tree.Section{"dir": tree.Scalar("/var/log/app")}},
	}

	require.NoError(t, (&JSONRenderer{}).Render(&buf, root))

	want := `{
  "log": {
    "file": {
      "dir": "/var/log/app"
    }
  },
  "name": "demo"
}
`
	assert.Equal(t, want, buf.String())
}

func TestJSONRenderer_Compact(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, (&JSONRenderer{Compact: true}).Render(&buf, tree.Section{"b": tree.Scalar("2"), "a": tree.Scalar("1")}))

	assert.Equal(t, "{\"a\":\"1\",\"b\":\"2\"}\n", buf.String())
}

func TestJSONRenderer_ScalarsAreStrings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONRenderer{}).Render(&buf, sampleTree()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "8080", decoded["port"])
	assert.Equal(t, "true", decoded["debug"])
	assert.Equal(t, "", decoded["empty"])
	assert.IsType(t, map[string]interface{}{}, decoded["log"])
}

func TestJSONRenderer_NoHTMLEscaping(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONRenderer{Compact: true}).Render(&buf, tree.Section{"cond": tree.Scalar("a<b && c>d")}))

	assert.Equal(t, "{\"cond\":\"a<b && c>d\"}\n", buf.String())
}

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(tree.Section{"dir": tree.Scalar("/tmp")})
	require.NoError(t, err)

	assert.Equal(t, `{"dir":"/tmp"}`, string(data))
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&YAMLRenderer{}).Render(&buf, sampleTree()))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "8080", decoded["port"], "numeric-looking values stay strings")
	assert.Equal(t, "true", decoded["debug"], "boolean-looking values stay strings")
	assert.Equal(t, "", decoded["empty"])
	assert.Equal(t, map[string]interface{}{
		"file": map[string]interface{}{"dir": "/var/log/app"},
	}, decoded["log"])
	assert.True(t, strings.HasPrefix(buf.String(), "debug:"), "keys are sorted")
}

func TestColorJSONRenderer_NoColorMatchesPlainJSON(t *testing.T) {
	var plain, colored bytes.Buffer
	root := sampleTree()

	require.NoError(t, (&JSONRenderer{}).Render(&plain, root))
	require.NoError(t, (&ColorJSONRenderer{Scheme: NoColorScheme()}).Render(&colored, root))

	assert.Equal(t, plain.String(), colored.String())
}

func TestColorJSONRenderer_EmptySection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&ColorJSONRenderer{Scheme: NoColorScheme()}).Render(&buf, tree.Section{"s": tree.Section{}}))

	assert.Equal(t, "{\n  \"s\": {}\n}\n", buf.String())
}

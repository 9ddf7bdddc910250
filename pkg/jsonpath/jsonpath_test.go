package jsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var doc = []byte(`{
  "name": "demo",
  "log": {
    "level": "info",
    "file": {"dir": "/var/log/app"}
  },
  "file.name": "dotted"
}`)

func TestQuery(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected string
		wantErr  bool
	}{
		{name: "gjson path", expr: "log.file.dir", expected: "/var/log/app"},
		{name: "jsonpath member", expr: "$.log.level", expected: "info"},
		{name: "jsonpath bracket", expr: "$['log']['level']", expected: "info"},
		{name: "double quoted bracket", expr: `$["name"]`, expected: "demo"},
		{name: "bracket with dot", expr: "$['file.name']", expected: "dotted"},
		{name: "section as json", expr: "$.log.file", expected: `{"dir": "/var/log/app"}`},
		{name: "trailing dot", expr: "$.log.", wantErr: true},
		{name: "missing", expr: "$.log.missing", wantErr: true},
		{name: "empty expression", expr: "", wantErr: true},
		{name: "unterminated", expr: "$['log", wantErr: true},
		{name: "empty member", expr: "$..log", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Query(doc, tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestQuery_Root(t *testing.T) {
	got, err := Query([]byte(`{"a":"1"}`), "$")
	require.NoError(t, err)

	assert.Equal(t, `{"a":"1"}`, got)
}

func TestQuery_EmptyDocument(t *testing.T) {
	_, err := Query(nil, "a")

	assert.Error(t, err)
}

func TestQueryAll(t *testing.T) {
	values, err := QueryAll(doc, []string{"name", "$.log.level"})
	require.NoError(t, err)
	assert.Equal(t, []string{"demo", "info"}, values)

	values, err = QueryAll(doc, []string{"name", "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path not found: nope")
	assert.Equal(t, "demo", values[0])

	_, err = QueryAll(doc, nil)
	assert.Error(t, err)
}

func TestToGjsonPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "$", expected: "@this"},
		{input: "log.file", expected: "log.file"},
		{input: "$.log.file", expected: "log.file"},
		{input: "$['file.name']", expected: `file\.name`},
		{input: "$.a[0]", expected: "a.0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := toGjsonPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

package output

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestColorSchemes(t *testing.T) {
	for name, scheme := range map[string]*ColorScheme{
		"default":  DefaultColorScheme(),
		"no color": NoColorScheme(),
	} {
		t.Run(name, func(t *testing.T) {
			assert.NotNil(t, scheme.Key)
			assert.NotNil(t, scheme.String)
			assert.NotNil(t, scheme.Punctuation)
			assert.NotNil(t, scheme.Success)
			assert.NotNil(t, scheme.Warning)
			assert.NotNil(t, scheme.Error)
			assert.NotNil(t, scheme.Highlight)
		})
	}
}

func TestNoColorScheme_PlainText(t *testing.T) {
	scheme := NoColorScheme()

	assert.Equal(t, "port", scheme.Key.Sprint("port"))
	assert.Equal(t, "boom", scheme.Error.Sprint("boom"))
}

func TestIcons(t *testing.T) {
	assert.Equal(t, "✓", SuccessIcon(true))
	assert.Equal(t, "✗", ErrorIcon(true))
	assert.Equal(t, "⚠", WarningIcon(true))

	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	assert.Contains(t, SuccessIcon(false), "✓")
	assert.NotEqual(t, "✓", SuccessIcon(false))
	assert.Contains(t, ErrorIcon(false), "✗")
}

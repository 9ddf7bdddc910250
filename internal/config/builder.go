package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Builder merges settings layers in the order they are added; earlier
// layers take precedence. Overrides from WithFlagSet are applied last.
type Builder struct {
	layers    []*Settings
	overrides []func(*Settings)
	err       error
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		layers: make([]*Settings, 0, 3),
	}
}

// WithFlags adds a layer of flag settings. Zero-valued fields fall
// through to the next layer; use WithFlagSet when an explicit false must
// win.
func (b *Builder) WithFlags(flags *Settings) *Builder {
	if flags != nil {
		b.layers = append(b.layers, flags)
	}
	return b
}

// WithEnv adds settings read from the process environment.
func (b *Builder) WithEnv() *Builder {
	return b.withEnv(nil)
}

// WithEnvironment adds settings read from environ instead of the process
// environment.
func (b *Builder) WithEnvironment(environ map[string]string) *Builder {
	if environ == nil {
		environ = map[string]string{}
	}
	return b.withEnv(environ)
}

func (b *Builder) withEnv(environ map[string]string) *Builder {
	envSettings := &Settings{}
	if err := parseEnv(envSettings, environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envSettings)
	return b
}

// WithDefaults adds the built-in defaults.
func (b *Builder) WithDefaults() *Builder {
	b.layers = append(b.layers, Defaults())
	return b
}

// Build merges the layers and validates the result.
func (b *Builder) Build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, layer := range b.layers {
		if err := mergo.Merge(settings, layer); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	for _, override := range b.overrides {
		override(settings)
	}

	if errs := settings.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return settings, nil
}

package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names read by WithFlagSet.
const (
	FlagSchema     = "schema"
	FlagFormat     = "format"
	FlagCompact    = "compact"
	FlagNoColor    = "no-color"
	FlagLogLevel   = "log-level"
	FlagJSONSchema = "json-schema"
)

// WithFlagSet adds the flags that were set explicitly on fs. They are
// applied after the merged layers, so an explicit --compact=false wins over
// DOTCONF_COMPACT=true. Flags fs does not define are ignored.
func (b *Builder) WithFlagSet(fs *pflag.FlagSet) *Builder {
	if fs == nil {
		return b
	}

	stringFlags := map[string]func(*Settings, string){
		FlagSchema:     func(s *Settings, v string) { s.SchemaPath = v },
		FlagFormat:     func(s *Settings, v string) { s.Format = v },
		FlagLogLevel:   func(s *Settings, v string) { s.LogLevel = v },
		FlagJSONSchema: func(s *Settings, v string) { s.JSONSchemaPath = v },
	}
	for name, set := range stringFlags {
		name, set := name, set
		if !fs.Changed(name) {
			continue
		}
		value, err := fs.GetString(name)
		if err != nil {
			b.err = errors.Join(b.err, fmt.Errorf("flag --%s: %w", name, err))
			continue
		}
		b.overrides = append(b.overrides, func(s *Settings) { set(s, value) })
	}

	boolFlags := map[string]func(*Settings, bool){
		FlagCompact: func(s *Settings, v bool) { s.Compact = v },
		FlagNoColor: func(s *Settings, v bool) { s.NoColor = v },
	}
	for name, set := range boolFlags {
		name, set := name, set
		if !fs.Changed(name) {
			continue
		}
		value, err := fs.GetBool(name)
		if err != nil {
			b.err = errors.Join(b.err, fmt.Errorf("flag --%s: %w", name, err))
			continue
		}
		b.overrides = append(b.overrides, func(s *Settings) { set(s, value) })
	}

	return b
}

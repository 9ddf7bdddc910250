// Package config resolves dotconf's own run settings and loads the
// configuration files it converts.
//
// Settings come from three layers, highest precedence first:
//   - command-line flags
//   - DOTCONF_* environment variables (DOTCONF_SCHEMA, DOTCONF_FORMAT,
//     DOTCONF_COMPACT, DOTCONF_NO_COLOR, DOTCONF_LOG_LEVEL,
//     DOTCONF_JSON_SCHEMA)
//   - built-in defaults
//
// The environment and defaults are merged field by field; a field left at
// its zero value in the environment is filled from the defaults. Flags the
// user set explicitly are applied on top of the merged result, so
// --no-color=false overrides DOTCONF_NO_COLOR=true.
//
//	settings, err := config.NewBuilder().
//	    WithFlagSet(cmd.Flags()).
//	    WithEnv().
//	    WithDefaults().
//	    Build()
package config

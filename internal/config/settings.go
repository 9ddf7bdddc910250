package config

// EnvPrefix prefixes every environment variable read into Settings.
const EnvPrefix = "DOTCONF_"

// Default values for Settings.
const (
	DefaultFormat   = "json"
	DefaultLogLevel = "warn"
)

// Settings holds the options of a dotconf run.
type Settings struct {
	// SchemaPath is the optional schema file ("key -> type" lines).
	SchemaPath string `env:"SCHEMA"`

	// Format is the output format: json or yaml.
	Format string `env:"FORMAT"`

	// Compact disables JSON indentation.
	Compact bool `env:"COMPACT"`

	// NoColor disables colored output and diagnostics.
	NoColor bool `env:"NO_COLOR"`

	// LogLevel sets the diagnostic log level.
	LogLevel string `env:"LOG_LEVEL"`

	// JSONSchemaPath is an optional JSON Schema the rendered document must
	// satisfy.
	JSONSchemaPath string `env:"JSON_SCHEMA"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		Format:   DefaultFormat,
		LogLevel: DefaultLogLevel,
	}
}

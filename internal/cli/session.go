package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/dotconf/internal/config"
	"github.com/wesleyorama2/dotconf/internal/logger"
	"github.com/wesleyorama2/dotconf/internal/output"
	"github.com/wesleyorama2/dotconf/internal/schema"
	"github.com/wesleyorama2/dotconf/internal/tree"
	"github.com/wesleyorama2/dotconf/pkg/jsonschema"
)

// session carries the resolved settings of one command invocation.
type session struct {
	settings  *config.Settings
	log       *logger.Logger
	formatter *output.Formatter
}

// newSession resolves settings from the command's flags, the environment
// and the defaults.
func newSession(cmd *cobra.Command) (*session, error) {
	settings, err := config.NewBuilder().
		WithFlagSet(cmd.Flags()).
		WithEnv().
		WithDefaults().
		Build()
	if err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, err
	}

	stderr := cmd.ErrOrStderr()
	return &session{
		settings:  settings,
		log:       logger.New(stderr, level, !colorFor(stderr, settings.NoColor)),
		formatter: output.NewFormatter(!colorFor(cmd.OutOrStdout(), settings.NoColor)),
	}, nil
}

// colorFor reports whether output written to w should be colored. Only a
// terminal gets color.
func colorFor(w io.Writer, noColor bool) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return output.UseColor(f, noColor)
}

// loadSchema reads the schema file named in the settings, if any.
func (s *session) loadSchema() (schema.Schema, error) {
	if s.settings.SchemaPath == "" {
		return nil, nil
	}
	return schema.LoadSchema(s.settings.SchemaPath, s.log)
}

// buildTree loads the schema and the configuration file and builds the tree.
func (s *session) buildTree(path string) (tree.Section, error) {
	sch, err := s.loadSchema()
	if err != nil {
		return nil, err
	}

	lines, err := config.LoadLines(path)
	if err != nil {
		return nil, err
	}

	builder := tree.NewBuilder(
		tree.WithSchema(sch),
		tree.WithLogger(s.log.WithField("config", path)),
	)
	return builder.Build(lines)
}

// checkDocument validates the rendered tree against the configured JSON
// Schema, if any.
func (s *session) checkDocument(root tree.Section) error {
	if s.settings.JSONSchemaPath == "" {
		return nil
	}

	compiled, err := jsonschema.CompileFile(s.settings.JSONSchemaPath)
	if err != nil {
		return err
	}

	doc, err := output.MarshalJSON(root)
	if err != nil {
		return err
	}
	return compiled.Validate(doc)
}

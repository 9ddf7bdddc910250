package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/dotconf/internal/output"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert a configuration file to JSON or YAML",
		Long: `Convert reads FILE, builds the nested structure described by its dotted
keys and prints it. Nothing is printed if any line fails: a key that uses a
value as a section, or a value that does not match its schema type, aborts
the conversion.`,
		Example: `  dotconf convert app.conf
  dotconf convert app.conf --schema app.schema --format yaml
  dotconf convert app.conf --compact -o app.json`,
		Args: exactArgs(1),
		RunE: runConvert,
	}

	cmd.Flags().StringP("schema", "s", "", "Schema file with \"key -> type\" lines")
	cmd.Flags().StringP("format", "f", "", "Output format: json or yaml (default json)")
	cmd.Flags().Bool("compact", false, "Write JSON on a single line")
	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().String("json-schema", "", "JSON Schema the converted document must satisfy")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	root, err := s.buildTree(args[0])
	if err != nil {
		return err
	}
	if err := s.checkDocument(root); err != nil {
		return err
	}

	format, err := output.ParseFormat(s.settings.Format)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	out := cmd.OutOrStdout()
	renderer := output.GetRenderer(output.RenderOptions{
		Format:  format,
		Compact: s.settings.Compact,
		Color:   outputPath == "" && colorFor(out, s.settings.NoColor),
	})

	// Render fully before writing so a failure leaves no partial output.
	var buf bytes.Buffer
	if err := renderer.Render(&buf, root); err != nil {
		return err
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("error writing output file: %w", err)
		}
		s.log.Info().Str("output", outputPath).Int("bytes", buf.Len()).Msg("converted configuration written")
		return nil
	}

	_, err = out.Write(buf.Bytes())
	return err
}

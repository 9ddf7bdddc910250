package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/dotconf/internal/schema"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema FILE",
		Short: "List the entries of a schema file",
		Long: `Schema parses FILE as a dotconf schema ("key -> type" per line) and lists
its entries sorted by key. Malformed lines are reported as warnings; types
other than bool, integer and String are listed as not validated.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			sch, err := schema.LoadSchema(args[0], s.log)
			if err != nil {
				return err
			}

			entries := sch.Entries()
			if len(entries) == 0 {
				fmt.Fprint(cmd.ErrOrStderr(), s.formatter.FormatWarning("%s declares no keys", args[0]))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), s.formatter.FormatSchema(entries))
			return nil
		},
	}
}

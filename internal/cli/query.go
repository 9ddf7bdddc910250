package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/dotconf/internal/output"
	"github.com/wesleyorama2/dotconf/pkg/jsonpath"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query FILE EXPR...",
		Short: "Evaluate JSONPath or gjson expressions against the converted document",
		Example: `  dotconf query app.conf '$.log.file.dir'
  dotconf query app.conf "$['file.name']" 'log|@keys'`,
		Args: minimumArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			root, err := s.buildTree(args[0])
			if err != nil {
				return err
			}

			doc, err := output.MarshalJSON(root)
			if err != nil {
				return err
			}

			values, err := jsonpath.QueryAll(doc, args[1:])
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}

	cmd.Flags().StringP("schema", "s", "", "Schema file with \"key -> type\" lines")

	return cmd
}

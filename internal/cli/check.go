package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Check a configuration file without printing it",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			fmt.Fprint(cmd.OutOrStdout(), s.formatter.FormatSuccess("%s is valid (%d keys)", args[0], len(root.Leaves())))
			return nil
		},
	}

	cmd.Flags().StringP("schema", "s", "", "Schema file with \"key -> type\" lines")
	cmd.Flags().String("json-schema", "", "JSON Schema the converted document must satisfy")

	return cmd
}

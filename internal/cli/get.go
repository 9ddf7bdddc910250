package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get FILE KEY",
		Short: "Print the value stored at a dotted key",
		Long: `Get prints the value at KEY. KEY is split on dots exactly like the keys in
FILE, so "log.file" prints the whole log.file section as JSON and
"log.file.dir" prints the bare value.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			root, err := s.buildTree(args[0])
			if err != nil {
				return err
			}

			value, ok := root.Lookup(args[1])
			if !ok {
				return fmt.Errorf("key not found: %s", args[1])
			}

			text, err := s.formatter.FormatValue(value)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringP("schema", "s", "", "Schema file with \"key -> type\" lines")

	return cmd
}

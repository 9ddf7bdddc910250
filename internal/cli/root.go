package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/dotconf/internal/output"
)

var version = "0.1.0"

// NewRootCmd builds the dotconf command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "dotconf",
		Short:   "Convert dotted key=value configuration files to JSON",
		Version: version,
		Long: `dotconf reads INI-like configuration files whose keys may be dotted paths
(log.file.dir = /var/log/app), builds the nested structure the dots describe,
optionally checks values against a "key -> type" schema, and prints the result
as JSON or YAML.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, print help
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("log-level", "", "Diagnostic log level: debug, info, warn, error, disabled (default warn)")

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newSchemaCmd())

	return rootCmd
}

// Execute runs the root command with the process arguments. Errors are
// reported on stderr and returned so that main can set the exit status.
func Execute() error {
	return ExecuteArgs(os.Args[1:])
}

// ExecuteArgs runs the root command with args.
func ExecuteArgs(args []string) error {
	return run(args, os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	if args == nil {
		args = []string{}
	}

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		noColor, _ := rootCmd.PersistentFlags().GetBool("no-color")
		color := colorFor(cmd.ErrOrStderr(), noColor)

		fmt.Fprint(cmd.ErrOrStderr(), output.NewFormatter(!color).FormatError(err))
		var usage *usageError
		if errors.As(err, &usage) {
			fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
		}
	}
	return err
}

// usageError marks errors caused by bad arguments; the usage text is
// printed after them.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// exactArgs is cobra.ExactArgs reported as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// minimumArgs is cobra.MinimumNArgs reported as a usage error.
func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// Package cli implements the shapetable command-line host.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	separator  separatorValue
	ending     endingValue
	infer      bool
	precision  int
	verbose    bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{
		separator: separatorValue{sep: ','},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	rootCmd := &cobra.Command{
		Use:           "shapetable",
		Short:         "Typed delimited-table tool",
		Long:          "Parse, inspect and re-render delimited text tables with a title line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML settings file")
	flags.VarP(&opts.separator, "separator", "s", `Field separator: one character, "\t", or "auto" to detect`)
	flags.VarP(&opts.ending, "ending", "e", "Line ending (lf, crlf, auto)")
	flags.BoolVarP(&opts.infer, "infer", "i", false, "Classify fields as integer, float or string")
	flags.IntVarP(&opts.precision, "precision", "p", 1, "Decimal places for float cells")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug details to stderr")

	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newLogger returns a text logger on w at info level, or debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

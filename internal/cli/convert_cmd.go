package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func newConvertCmd(opts *globalOptions) *cobra.Command {
	var (
		outSeparator separatorValue
		outEnding    endingValue
		outFile      string
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Re-render a table with another separator or line ending",
		Long: `Parse a table from a file (or stdin) and write it back out.

Without --infer every cell is copied verbatim. With --infer numeric cells are
re-rendered, so floats are written with --precision decimal places.`,
		Example: `  shapetable convert --separator ';' --out-separator ',' data.csv
  cat data.tsv | shapetable convert -s '\t' --out-ending crlf -o data.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, name, err := opts.loadTable(cmd, args)
			if err != nil {
				return err
			}

			out := tbl.Settings()
			if cmd.Flags().Changed("out-separator") {
				if outSeparator.auto {
					return errors.New("--out-separator cannot be auto")
				}
				out = out.WithSeparator(outSeparator.sep)
			}
			if cmd.Flags().Changed("out-ending") {
				out = out.WithEnding(outEnding.ending)
			}
			if err := tbl.SetSettings(out); err != nil {
				return err
			}

			if outFile == "" {
				n, err := tbl.WriteTo(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				opts.logger.Debug("wrote table", "input", name, "bytes", n)
				return nil
			}

			f, err := os.Create(outFile)
			if err != nil {
				return err
			}
			n, err := tbl.WriteTo(f)
			if err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			opts.logger.Info("wrote table", "input", name, "output", outFile, "bytes", n, "rows", tbl.RowCount())
			return nil
		},
	}

	cmd.Flags().Var(&outSeparator, "out-separator", "Output field separator (default: input separator)")
	cmd.Flags().Var(&outEnding, "out-ending", "Output line ending (default: input ending)")
	cmd.Flags().StringVarP(&outFile, "out-file", "o", "", "Write to this file instead of stdout")

	return cmd
}

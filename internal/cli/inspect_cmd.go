package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-table/pkg/table"
)

func newInspectCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the titles, row count and column kinds of a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, name, err := opts.loadTable(cmd, args)
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), name, tbl)
		},
	}
}

// printSummary writes a plain-text description of tbl.
//
//	input:   data.csv
//	ending:  lf
//	columns: 3
//	rows:    2
//	  name   string
//	  age    integer
//	  score  integer, float
func printSummary(w io.Writer, name string, tbl *table.Table) error {
	titles := tbl.Titles()

	width := 0
	for _, title := range titles {
		if len(title) > width {
			width = len(title)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "input:   %s\n", name)
	fmt.Fprintf(&sb, "ending:  %s\n", tbl.Ending())
	fmt.Fprintf(&sb, "columns: %d\n", tbl.ColumnCount())
	fmt.Fprintf(&sb, "rows:    %d\n", tbl.RowCount())
	for i, title := range titles {
		fmt.Fprintf(&sb, "  %-*s  %s\n", width, title, columnKinds(tbl.Column(i)))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// columnKinds lists the distinct kinds in a column, or "-" when it is empty.
func columnKinds(column []table.Value) string {
	var seen [3]bool
	for _, v := range column {
		seen[v.Kind()] = true
	}

	kinds := make([]string, 0, len(seen))
	for _, k := range []table.Kind{table.KindString, table.KindInteger, table.KindFloat} {
		if seen[k] {
			kinds = append(kinds, k.String())
		}
	}
	if len(kinds) == 0 {
		return "-"
	}
	return strings.Join(kinds, ", ")
}

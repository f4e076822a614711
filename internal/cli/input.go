package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shapestone/shape-table/pkg/table"
)

var errNoInput = errors.New("no input: pass a file or pipe data on stdin")

// readInput reads the named file, or stdin when args is empty or "-".
// It returns the data and a name for messages.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return nil, "", errNoInput
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", err
	}
	return data, args[0], nil
}

// loadTable reads the command input and parses it with the resolved settings.
func (o *globalOptions) loadTable(cmd *cobra.Command, args []string) (*table.Table, string, error) {
	data, name, err := readInput(cmd, args)
	if err != nil {
		return nil, "", err
	}
	input := string(data)

	settings, err := o.settings(cmd, input)
	if err != nil {
		return nil, "", err
	}

	tbl, err := table.Parse(input, settings)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", name, err)
	}
	o.logger.Debug("parsed table",
		"input", name,
		"bytes", len(data),
		"columns", tbl.ColumnCount(),
		"rows", tbl.RowCount(),
		"ending", tbl.Ending().String())
	return tbl, name, nil
}

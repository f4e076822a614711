// Package main is the entry point for the shapetable CLI binary.
package main

import (
	"os"

	"github.com/shapestone/shape-table/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

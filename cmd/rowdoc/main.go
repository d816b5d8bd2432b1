// Package main provides the CLI entrypoint for rowdoc.
//
// rowdoc runs a query against a SQLite database and shows how each result
// row converts into a document:
//   - dump prints one document per row (YAML or JSON lines)
//   - inspect prints the per-column conversion report
//   - check decodes every row into the record declared in the config
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

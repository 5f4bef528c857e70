package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/seanlgirgis/folio/internal/cli"
	"github.com/seanlgirgis/folio/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "FOLIO",
		Section: "1",
		Source:  "folio " + version.Version,
		Manual:  "folio manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

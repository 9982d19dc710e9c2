package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/serversideup/permshift/permshiftcmd"
)

func main() {
	cmd := &permshiftcmd.SetFilePermissionsCommand{}

	parser := flags.NewParser(cmd, flags.Default)
	parser.NamespaceDelimiter = "-"

	remaining, err := parser.Parse()
	mustNot(err)
	mustNot(cmd.Execute(remaining))
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var mustNot = must

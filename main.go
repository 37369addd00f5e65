package main

import (
	"fmt"
	"os"

	"fjacquet/expenses/cmd/export"
	"fjacquet/expenses/cmd/report"
	"fjacquet/expenses/cmd/root"
	"fjacquet/expenses/cmd/validate"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

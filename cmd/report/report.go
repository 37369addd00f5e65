// Package report implements the report command.
package report

import (
	"fjacquet/expenses/cmd/common"
	"fjacquet/expenses/cmd/root"

	"github.com/spf13/cobra"
)

var format string

// Cmd prints the expense report of the given export files.
var Cmd = &cobra.Command{
	Use:   "report file...",
	Short: "Print the expense report of Nordea export files",
	Long: `Print, for every export file, the account summary, the monthly breakdown and
the recurrent payments. The --output-format flag overrides the configured
report format for this run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := root.AppConfig.Report.Format
		if cmd.Flags().Changed("output-format") {
			f = format
		}
		root.Log.Info("Running report command")
		return common.RunReport(root.AppContainer, cmd.OutOrStdout(), args, f)
	},
}

func init() {
	Cmd.Flags().StringVarP(&format, "output-format", "t", common.FormatText, "report format (text, json, yaml)")
}

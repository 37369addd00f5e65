// Package export implements the export command.
package export

import (
	"fjacquet/expenses/cmd/common"
	"fjacquet/expenses/cmd/root"

	"github.com/spf13/cobra"
)

var output string

// Cmd writes the transactions of the given export files as CSV.
var Cmd = &cobra.Command{
	Use:   "export file...",
	Short: "Export the transactions of Nordea export files to CSV",
	Long: `Parse the export files and write all their transactions to a single CSV file,
one row per transaction with the account number in the first column. Without
--output the CSV is printed to standard output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root.Log.Info("Running export command")
		return common.ExportCSV(root.AppContainer, cmd.OutOrStdout(), args, output)
	},
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV file (default standard output)")
}

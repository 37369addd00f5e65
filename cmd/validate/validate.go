// Package validate implements the validate command.
package validate

import (
	"fjacquet/expenses/cmd/common"
	"fjacquet/expenses/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd checks that the given files look like Nordea exports.
var Cmd = &cobra.Command{
	Use:   "validate file...",
	Short: "Check that files are Nordea account exports",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.ValidateFiles(root.AppContainer, cmd.OutOrStdout(), args)
	},
}

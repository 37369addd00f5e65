// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/expenses/cmd/common"
	"fjacquet/expenses/internal/config"
	"fjacquet/expenses/internal/container"
	"fjacquet/expenses/internal/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration loaded for the running command.
	AppConfig *config.Config

	// AppContainer holds the dependencies of the running command.
	AppContainer *container.Container

	configFile string
	initOnce   sync.Once

	// Cmd is the root command. Given files, it prints their expense report.
	Cmd = &cobra.Command{
		Use:   "expenses [file]...",
		Short: "Summarize Nordea account exports into an expense report.",
		Long: `expenses reads tab-separated account exports downloaded from Nordea netbank
and prints, for every account, its income, expenses and profit, a monthly
breakdown with the largest expenses, and the payments that recur.

With several files, a summary across all accounts is printed at the end.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initialize,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return common.RunReport(AppContainer, cmd.OutOrStdout(), args, AppConfig.Report.Format)
		},
	}
)

// flagKeys maps persistent flags to their configuration keys.
var flagKeys = map[string]string{
	"log-level":         "log.level",
	"log-format":        "log.format",
	"encoding":          "input.encoding",
	"style":             "report.style",
	"top-expenses":      "report.top_expenses",
	"month-order":       "report.month_order",
	"format":            "report.format",
	"continue-on-error": "report.continue_on_error",
	"csv-delimiter":     "export.delimiter",
}

// Init defines the persistent flags of the root command. It is safe to call
// more than once.
func Init() {
	initOnce.Do(func() {
		flags := Cmd.PersistentFlags()
		flags.StringVar(&configFile, "config", "", "config file (default searches ./config.yaml, .expenses/ and $HOME/.expenses/)")
		flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
		flags.String("log-format", "text", "log format (text, json)")
		flags.String("encoding", "utf-8", "encoding of the export files (utf-8, latin1, windows-1252)")
		flags.String("style", "auto", "emphasis style of the text report (auto, ansi, markup, plain)")
		flags.Int("top-expenses", 10, "number of expenses listed per month")
		flags.String("month-order", "lexical", "order of the monthly breakdown (lexical, calendar)")
		flags.StringP("format", "f", "text", "report format (text, json, yaml)")
		flags.Bool("continue-on-error", false, "keep going when a file cannot be processed")
		flags.String("csv-delimiter", ",", "column delimiter of exported CSV")
	})
}

func initialize(cmd *cobra.Command, _ []string) error {
	config.LoadEnv()

	v := config.NewViper(configFile)
	for flag, key := range flagKeys {
		if f := cmd.Root().PersistentFlags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", flag, err)
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format).
		WithField(logging.FieldRunID, uuid.NewString())

	c, err := container.NewContainer(cfg, Log)
	if err != nil {
		return err
	}

	AppConfig = cfg
	AppContainer = c
	Log.Debug("Configuration loaded", logging.F(logging.FieldComponent, cmd.Name()))
	return nil
}

// GetConfig returns the configuration of the running command, nil before
// the command was initialized.
func GetConfig() *config.Config {
	return AppConfig
}

// GetContainer returns the dependency container of the running command.
func GetContainer() *container.Container {
	return AppContainer
}

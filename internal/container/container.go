// Package container provides dependency injection for the expenses application.
// It centralizes the creation and wiring of the parser, the report
// collaborators and the logger.
package container

import (
	"fmt"
	"io"
	"unicode/utf8"

	"fjacquet/expenses/internal/analysis"
	"fjacquet/expenses/internal/common"
	"fjacquet/expenses/internal/config"
	"fjacquet/expenses/internal/expenses"
	"fjacquet/expenses/internal/logging"
	"fjacquet/expenses/internal/nordeaparser"
	"fjacquet/expenses/internal/parser"
	"fjacquet/expenses/internal/report"
	"fjacquet/expenses/internal/style"
)

// Container holds the application dependencies. It is immutable after
// creation; dependencies are reached through getters.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	parser     *nordeaparser.Parser
	csvWriter  *common.CSVWriter
	generator  *report.Generator
	monthOrder analysis.MonthOrder
}

// NewContainer creates and wires all application dependencies. A nil logger
// is built from the log section of cfg.
func NewContainer(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	p := nordeaparser.NewParser(logger)
	if err := p.SetEncoding(cfg.Input.Encoding); err != nil {
		return nil, fmt.Errorf("invalid input configuration: %w", err)
	}

	order, err := analysis.ParseMonthOrder(cfg.Report.MonthOrder)
	if err != nil {
		return nil, fmt.Errorf("invalid report configuration: %w", err)
	}

	delimiter, _ := utf8.DecodeRuneInString(cfg.Export.Delimiter)
	if delimiter == utf8.RuneError {
		delimiter = common.DefaultDelimiter
	}

	logger.Debug("Container initialized",
		logging.F(logging.FieldEncoding, p.Encoding()),
		logging.F(logging.FieldFormat, cfg.Report.Format))

	return &Container{
		logger:     logger,
		config:     cfg,
		parser:     p,
		csvWriter:  common.NewCSVWriter(logger, delimiter),
		generator:  report.NewGenerator(logger),
		monthOrder: order,
	}, nil
}

// NewProcessor returns a report processor writing to out, styled according
// to the configuration.
func (c *Container) NewProcessor(out io.Writer) (*expenses.Processor, error) {
	em, err := style.Parse(c.config.Report.Style, out)
	if err != nil {
		return nil, fmt.Errorf("invalid report configuration: %w", err)
	}

	return expenses.NewProcessor(out, c.parser, em, c.logger, expenses.Options{
		TopExpenses:     c.config.Report.TopExpenses,
		MonthOrder:      c.monthOrder,
		ContinueOnError: c.config.Report.ContinueOnError,
	}), nil
}

// GetParser returns the export parser.
func (c *Container) GetParser() parser.FullParser {
	return c.parser
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetCSVWriter returns the transaction CSV writer.
func (c *Container) GetCSVWriter() *common.CSVWriter {
	return c.csvWriter
}

// GetGenerator returns the structured report generator.
func (c *Container) GetGenerator() *report.Generator {
	return c.generator
}

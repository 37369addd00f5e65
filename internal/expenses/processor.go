// Package expenses runs the report over a list of account export files.
package expenses

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/expenses/internal/analysis"
	"fjacquet/expenses/internal/logging"
	"fjacquet/expenses/internal/models"
	"fjacquet/expenses/internal/parser"
	"fjacquet/expenses/internal/report"
	"fjacquet/expenses/internal/style"
)

// Options controls a Processor.
type Options struct {
	TopExpenses int
	MonthOrder  analysis.MonthOrder
	// ContinueOnError keeps processing the remaining files after a failure.
	// The failures are returned together once every file was tried.
	ContinueOnError bool
}

// Processor parses export files one at a time and renders their reports.
type Processor struct {
	out      io.Writer
	parser   parser.FileParser
	renderer *report.Renderer
	logger   logging.Logger
	opts     Options
}

// NewProcessor creates a Processor writing reports to out.
func NewProcessor(out io.Writer, p parser.FileParser, em style.Emphasizer, logger logging.Logger, opts Options) *Processor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Processor{
		out:    out,
		parser: p,
		renderer: report.NewRenderer(out, em,
			report.WithTopExpenses(opts.TopExpenses),
			report.WithMonthOrder(opts.MonthOrder)),
		logger: logger.WithField(logging.FieldComponent, "Processor"),
		opts:   opts,
	}
}

// ProcessFile parses filePath and renders its report. It returns the
// account summary.
func (p *Processor) ProcessFile(filePath string) (models.Summary, error) {
	account, err := p.parser.ParseFile(filePath, p.out)
	if err != nil {
		return models.Summary{}, err
	}

	summary, err := p.renderer.Account(account)
	if err != nil {
		return models.Summary{}, fmt.Errorf("error writing report for %s: %w", filePath, err)
	}

	p.logger.Debug("Rendered account report",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldAccount, account.Number),
		logging.F(logging.FieldCount, len(account.Transactions)))
	return summary, nil
}

// ProcessFiles renders the report of every file in order and returns the
// sum of their summaries. With more than one file, the combined summary is
// written after the last report.
func (p *Processor) ProcessFiles(paths []string) (models.Summary, error) {
	total := models.NewSummary()
	var errs []error

	for _, path := range paths {
		summary, err := p.ProcessFile(path)
		if err != nil {
			if !p.opts.ContinueOnError {
				return total, err
			}
			p.logger.WithError(err).Error("Failed to process file, continuing",
				logging.F(logging.FieldFile, path))
			errs = append(errs, err)
			continue
		}
		total = total.Add(summary)
	}

	if len(paths) > 1 {
		if err := p.renderer.Totals(total); err != nil {
			return total, fmt.Errorf("error writing totals: %w", err)
		}
	}

	p.logger.Info("Processed files",
		logging.F(logging.FieldFiles, len(paths)),
		logging.F(logging.FieldFailed, len(errs)))
	return total, errors.Join(errs...)
}

// Collect parses every file and builds the structured report. Progress lines
// written by the parser go to progress.
func (p *Processor) Collect(paths []string, progress io.Writer) (*report.Document, error) {
	doc := &report.Document{Accounts: []report.AccountReport{}}
	total := models.NewSummary()
	var errs []error

	for _, path := range paths {
		account, err := p.parser.ParseFile(path, progress)
		if err != nil {
			if !p.opts.ContinueOnError {
				return nil, err
			}
			p.logger.WithError(err).Error("Failed to process file, continuing",
				logging.F(logging.FieldFile, path))
			errs = append(errs, err)
			continue
		}

		ar := report.BuildAccountReport(path, account, p.opts.MonthOrder, p.opts.TopExpenses)
		doc.Accounts = append(doc.Accounts, ar)
		total = total.Add(analysis.AccountSummary(account))
	}

	if len(paths) > 1 {
		view := report.NewSummaryView(total)
		doc.Total = &view
	}
	return doc, errors.Join(errs...)
}

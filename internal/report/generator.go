package report

import (
	"encoding/json"
	"fmt"

	"fjacquet/expenses/internal/analysis"
	"fjacquet/expenses/internal/logging"
	"fjacquet/expenses/internal/models"
	"fjacquet/expenses/internal/recurrent"

	"gopkg.in/yaml.v3"
)

// Supported document formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is the structured form of a report over one or more accounts.
// Amounts are rendered with two decimals, as in the text report.
type Document struct {
	Accounts []AccountReport `json:"accounts" yaml:"accounts"`
	Total    *SummaryView    `json:"total,omitempty" yaml:"total,omitempty"`
}

// AccountReport is the structured report of one account.
type AccountReport struct {
	File         string            `json:"file" yaml:"file"`
	Account      string            `json:"account" yaml:"account"`
	Transactions int               `json:"transactions" yaml:"transactions"`
	PeriodStart  string            `json:"period_start,omitempty" yaml:"period_start,omitempty"`
	PeriodEnd    string            `json:"period_end,omitempty" yaml:"period_end,omitempty"`
	Summary      SummaryView       `json:"summary" yaml:"summary"`
	Months       []MonthReport     `json:"months" yaml:"months"`
	Recurrent    []RecurrentReport `json:"recurrent" yaml:"recurrent"`
}

// SummaryView is a summary with formatted amounts.
type SummaryView struct {
	Income   string `json:"income" yaml:"income"`
	Expenses string `json:"expenses" yaml:"expenses"`
	Profit   string `json:"profit" yaml:"profit"`
}

// MonthReport lists the transactions of one month.
type MonthReport struct {
	Month          string      `json:"month" yaml:"month"`
	Income         []LineView  `json:"income" yaml:"income"`
	Expenses       []LineView  `json:"expenses" yaml:"expenses"`
	HiddenExpenses int         `json:"hidden_expenses,omitempty" yaml:"hidden_expenses,omitempty"`
	Summary        SummaryView `json:"summary" yaml:"summary"`
}

// LineView is one transaction of a month.
type LineView struct {
	Date    string `json:"date" yaml:"date"`
	Amount  string `json:"amount" yaml:"amount"`
	Message string `json:"message" yaml:"message"`
}

// RecurrentReport is one recurrent payment.
type RecurrentReport struct {
	Key   string   `json:"key" yaml:"key"`
	Total string   `json:"total" yaml:"total"`
	Dates []string `json:"dates" yaml:"dates"`
}

// NewSummaryView formats s.
func NewSummaryView(s models.Summary) SummaryView {
	return SummaryView{
		Income:   models.FormatSigned(s.Income),
		Expenses: "-" + models.FormatPlain(s.Expenses),
		Profit:   models.FormatSigned(s.Profit()),
	}
}

// BuildAccountReport computes the structured report of acc, read from file.
func BuildAccountReport(file string, acc *models.Account, order analysis.MonthOrder, topN int) AccountReport {
	ar := AccountReport{
		File:         file,
		Account:      acc.Number,
		Transactions: len(acc.Transactions),
		Summary:      NewSummaryView(analysis.AccountSummary(acc)),
		Months:       []MonthReport{},
		Recurrent:    []RecurrentReport{},
	}
	if first, last, ok := acc.Period(); ok {
		ar.PeriodStart, ar.PeriodEnd = first, last
	}

	for _, month := range analysis.Months(acc, order) {
		b := analysis.BreakdownMonth(acc, month, topN)
		mr := MonthReport{
			Month:          month,
			Income:         lineViews(b.Income),
			Expenses:       lineViews(b.Shown()),
			HiddenExpenses: b.Hidden(),
			Summary:        NewSummaryView(b.Summary),
		}
		ar.Months = append(ar.Months, mr)
	}

	for _, p := range recurrent.Detect(acc).Payments {
		rr := RecurrentReport{
			Key:   p.Key,
			Total: models.FormatPlain(p.TotalSpent.Neg()),
		}
		for _, t := range p.Transactions(acc) {
			rr.Dates = append(rr.Dates, t.EntryDate)
		}
		ar.Recurrent = append(ar.Recurrent, rr)
	}

	return ar
}

func lineViews(list []*models.Transaction) []LineView {
	views := make([]LineView, 0, len(list))
	for _, t := range list {
		views = append(views, LineView{
			Date:    t.EntryDate,
			Amount:  models.FormatSigned(t.Amount),
			Message: t.DisplayMessage(),
		})
	}
	return views
}

// Generator serializes report documents.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a Generator. A nil logger is replaced by a default one.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{
		logger: logger.WithField(logging.FieldComponent, "ReportGenerator"),
	}
}

// Generate serializes doc in the given format (json or yaml).
func (g *Generator) Generate(doc *Document, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return g.generateJSON(doc)
	case FormatYAML:
		return g.generateYAML(doc)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(data, '\n'), nil
}

func (g *Generator) generateYAML(doc *Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return data, nil
}

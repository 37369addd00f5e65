// Package report renders account reports as text and as structured documents.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"fjacquet/expenses/internal/analysis"
	"fjacquet/expenses/internal/models"
	"fjacquet/expenses/internal/recurrent"
	"fjacquet/expenses/internal/style"
)

const totalsRule = "------------------------"

// Renderer writes the text report of accounts to an output. Every method
// returns the first write error it encounters.
type Renderer struct {
	out   io.Writer
	em    style.Emphasizer
	topN  int
	order analysis.MonthOrder
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTopExpenses sets how many expenses are listed per month.
func WithTopExpenses(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.topN = n
		}
	}
}

// WithMonthOrder sets the order of the months section.
func WithMonthOrder(order analysis.MonthOrder) Option {
	return func(r *Renderer) {
		r.order = order
	}
}

// NewRenderer creates a Renderer writing to out. A nil em means style.Plain.
func NewRenderer(out io.Writer, em style.Emphasizer, opts ...Option) *Renderer {
	if em == nil {
		em = style.Plain{}
	}
	r := &Renderer{
		out:   out,
		em:    em,
		topN:  analysis.TopExpenses,
		order: analysis.MonthOrderLexical,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// lineWriter stops writing after the first error.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(parts ...string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, strings.Join(parts, "")+"\n")
}

func (r *Renderer) bold(text string) string {
	return r.em.Emphasize(text, style.Bold)
}

func (r *Renderer) underline(text string) string {
	return r.em.Emphasize(text, style.Underline)
}

// Account renders every section for acc and returns its summary.
func (r *Renderer) Account(acc *models.Account) (models.Summary, error) {
	if err := r.Separator(); err != nil {
		return models.Summary{}, err
	}
	if err := r.AccountDetails(acc); err != nil {
		return models.Summary{}, err
	}
	if err := r.Separator(); err != nil {
		return models.Summary{}, err
	}
	summary, err := r.AccountSummary(acc)
	if err != nil {
		return models.Summary{}, err
	}
	if err := r.Separator(); err != nil {
		return models.Summary{}, err
	}
	if err := r.Months(acc); err != nil {
		return models.Summary{}, err
	}
	if err := r.Separator(); err != nil {
		return models.Summary{}, err
	}
	if err := r.Recurrent(acc); err != nil {
		return models.Summary{}, err
	}
	return summary, nil
}

// Separator writes the two blank lines between sections.
func (r *Renderer) Separator() error {
	lw := &lineWriter{w: r.out}
	lw.line()
	lw.line()
	return lw.err
}

// AccountDetails writes the account number, transaction count and, when
// there are transactions, the period they cover.
func (r *Renderer) AccountDetails(acc *models.Account) error {
	lw := &lineWriter{w: r.out}
	lw.line("     Account: ", acc.Number)
	lw.line(fmt.Sprintf("Transactions: %d", len(acc.Transactions)))
	if first, last, ok := acc.Period(); ok {
		lw.line("      Period: ", first, " - ", last)
	}
	return lw.err
}

// AccountSummary writes the summary section of acc and returns the summary.
func (r *Renderer) AccountSummary(acc *models.Account) (models.Summary, error) {
	summary := analysis.AccountSummary(acc)

	lw := &lineWriter{w: r.out}
	lw.line(r.underline("Summary:"))
	lw.line()
	if lw.err != nil {
		return models.Summary{}, lw.err
	}
	if err := r.SummaryBlock(summary); err != nil {
		return models.Summary{}, err
	}
	return summary, nil
}

// SummaryBlock writes the income, expenses and profit lines of s.
func (r *Renderer) SummaryBlock(s models.Summary) error {
	lw := &lineWriter{w: r.out}
	r.summaryBlock(lw, s)
	return lw.err
}

func (r *Renderer) summaryBlock(lw *lineWriter, s models.Summary) {
	lw.line("      Income: ", models.FormatSigned(s.Income))
	lw.line("    Expenses: -", models.FormatPlain(s.Expenses))
	lw.line("      ", r.underline("Profit: "+models.FormatSigned(s.Profit())))
}

// Months writes one block per month, most recent first.
func (r *Renderer) Months(acc *models.Account) error {
	lw := &lineWriter{w: r.out}
	lw.line(r.underline("Months:"))

	for _, month := range analysis.Months(acc, r.order) {
		b := analysis.BreakdownMonth(acc, month, r.topN)

		lw.line()
		lw.line("    ", r.bold(month+":"))

		for _, t := range b.Income {
			r.monthLine(lw, t)
		}
		if !b.Summary.Income.IsZero() {
			lw.line()
		}

		for _, t := range b.Shown() {
			r.monthLine(lw, t)
		}

		lw.line()
		r.summaryBlock(lw, b.Summary)
	}
	return lw.err
}

func (r *Renderer) monthLine(lw *lineWriter, t *models.Transaction) {
	lw.line("        ", t.EntryDate, ": ", models.FormatSigned(t.Amount), " (", t.DisplayMessage(), ")")
}

// Recurrent writes the recurrent payments of acc with their transactions.
func (r *Renderer) Recurrent(acc *models.Account) error {
	result := recurrent.Detect(acc)

	lw := &lineWriter{w: r.out}
	lw.line(r.underline("Recurrent payments:"))
	lw.line()

	for _, p := range result.Payments {
		padding := strings.Repeat(" ", result.MaxKeyWidth-utf8.RuneCountInString(p.Key))
		lw.line("    ", r.bold(p.Key), ": ", padding, " ",
			r.underline("Total: "+models.FormatPlain(p.TotalSpent.Neg())))

		for _, t := range p.Transactions(acc) {
			lw.line("        ", t.EntryDate, ": ", models.FormatPlain(t.Amount.Neg()))
		}
	}
	return lw.err
}

// Totals writes the combined summary of several accounts between two rules.
func (r *Renderer) Totals(s models.Summary) error {
	lw := &lineWriter{w: r.out}
	lw.line(totalsRule)
	lw.line(r.underline("Summary across accounts:"))
	r.summaryBlock(lw, s)
	lw.line(totalsRule)
	return lw.err
}

package models

import "github.com/shopspring/decimal"

// Summary holds income and expenses for some scope (month, account, all accounts).
// Both components are non-negative; expenses are stored as a magnitude.
type Summary struct {
	Income   decimal.Decimal `json:"income" yaml:"income"`
	Expenses decimal.Decimal `json:"expenses" yaml:"expenses"`
}

// NewSummary returns a zero summary.
func NewSummary() Summary {
	return Summary{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}
}

// SummaryOf computes the summary of a list of transactions.
func SummaryOf(transactions []*Transaction) Summary {
	s := NewSummary()
	for _, t := range transactions {
		s = s.Record(t)
	}
	return s
}

// Record returns the summary with t accounted for. Zero amounts are ignored.
func (s Summary) Record(t *Transaction) Summary {
	switch {
	case t.IsIncome():
		s.Income = s.Income.Add(t.Amount)
	case t.IsExpense():
		s.Expenses = s.Expenses.Add(t.Amount.Abs())
	}
	return s
}

// Profit is income minus expenses.
func (s Summary) Profit() decimal.Decimal {
	return s.Income.Sub(s.Expenses)
}

// Add combines two summaries component-wise.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Income:   s.Income.Add(other.Income),
		Expenses: s.Expenses.Add(other.Expenses),
	}
}

// Equal compares both components numerically.
func (s Summary) Equal(other Summary) bool {
	return s.Income.Equal(other.Income) && s.Expenses.Equal(other.Expenses)
}

// IsZero reports whether the summary has neither income nor expenses.
func (s Summary) IsZero() bool {
	return s.Income.IsZero() && s.Expenses.IsZero()
}

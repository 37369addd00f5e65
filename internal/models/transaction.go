// Package models provides the data structures used throughout the application.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is a single row of a bank account export.
type Transaction struct {
	EntryDate           string          `json:"entry_date" yaml:"entry_date"` // DD.MM.YYYY
	Month               string          `json:"month" yaml:"month"`           // MM.YYYY, derived from EntryDate
	ValueDate           string          `json:"value_date" yaml:"value_date"`
	PaymentDate         string          `json:"payment_date" yaml:"payment_date"`
	Amount              decimal.Decimal `json:"amount" yaml:"amount"` // positive is income, negative is expense
	Beneficiary         string          `json:"beneficiary" yaml:"beneficiary"`
	AccountNumber       string          `json:"account_number" yaml:"account_number"`
	BIC                 string          `json:"bic" yaml:"bic"`
	Transaction         string          `json:"transaction" yaml:"transaction"` // type label, e.g. "Card purchase"
	ReferenceNumber     string          `json:"reference_number" yaml:"reference_number"`
	OriginatorReference string          `json:"originator_reference" yaml:"originator_reference"`
	Message             string          `json:"message" yaml:"message"`
	CardNumber          string          `json:"card_number" yaml:"card_number"`
	Receipt             string          `json:"receipt" yaml:"receipt"`
}

// MonthOf derives the month key from an entry date by dropping the leading
// "DD." prefix. It does not parse the date.
func MonthOf(entryDate string) string {
	runes := []rune(entryDate)
	if len(runes) <= 3 {
		return ""
	}
	return string(runes[3:])
}

// IsIncome reports whether the transaction brought money in.
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the transaction took money out.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// Equal reports whether two transactions share entry date and amount.
func (t *Transaction) Equal(other *Transaction) bool {
	return t.EntryDate == other.EntryDate && t.Amount.Equal(other.Amount)
}

// Compare orders transactions by amount ascending, then by entry date string.
// The date tie-break is lexicographic on DD.MM.YYYY, not chronological.
func Compare(a, b *Transaction) int {
	if c := a.Amount.Cmp(b.Amount); c != 0 {
		return c
	}
	return strings.Compare(a.EntryDate, b.EntryDate)
}

// CounterpartyKey identifies who was paid: the beneficiary, or the
// transaction type label when the beneficiary is empty.
func (t *Transaction) CounterpartyKey() string {
	if t.Beneficiary == "" {
		return t.Transaction
	}
	return t.Beneficiary
}

// DisplayMessage composes "{beneficiary} - {type} {message}" for report lines.
func (t *Transaction) DisplayMessage() string {
	beneficiary := ""
	if t.Beneficiary != "" {
		beneficiary = t.Beneficiary + " -"
	}
	return strings.TrimSpace(beneficiary + " " + t.Transaction + " " + t.Message)
}

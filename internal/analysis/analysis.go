// Package analysis computes the account and monthly figures shown in a report.
// All functions are pure; returned transactions point into the account's slice.
package analysis

import (
	"fmt"
	"slices"
	"sort"

	"fjacquet/expenses/internal/dateutils"
	"fjacquet/expenses/internal/models"
)

// TopExpenses is the default number of expenses listed per month.
const TopExpenses = 10

// MonthOrder selects how months are ordered in a report.
type MonthOrder string

const (
	// MonthOrderLexical sorts MM.YYYY keys as strings, so 01.2019 comes
	// before 05.2018. This is the default.
	MonthOrderLexical MonthOrder = "lexical"
	// MonthOrderCalendar sorts months by year, then month.
	MonthOrderCalendar MonthOrder = "calendar"
)

// ParseMonthOrder converts a configuration value to a MonthOrder. An empty
// value selects MonthOrderLexical.
func ParseMonthOrder(value string) (MonthOrder, error) {
	switch MonthOrder(value) {
	case "", MonthOrderLexical:
		return MonthOrderLexical, nil
	case MonthOrderCalendar:
		return MonthOrderCalendar, nil
	default:
		return "", fmt.Errorf("unknown month order: %s", value)
	}
}

// AccountSummary sums income and expenses over all transactions of acc.
func AccountSummary(acc *models.Account) models.Summary {
	return models.Summary{
		Income:   acc.Sum((*models.Transaction).IsIncome),
		Expenses: acc.Sum((*models.Transaction).IsExpense).Abs(),
	}
}

// Months returns the distinct months of acc in display order, most recent first.
func Months(acc *models.Account, order MonthOrder) []string {
	seen := make(map[string]struct{})
	months := make([]string, 0)
	for i := range acc.Transactions {
		month := acc.Transactions[i].Month
		if _, ok := seen[month]; ok {
			continue
		}
		seen[month] = struct{}{}
		months = append(months, month)
	}

	if order == MonthOrderCalendar {
		sort.SliceStable(months, func(i, j int) bool {
			return dateutils.CompareMonths(months[i], months[j]) < 0
		})
	} else {
		sort.Strings(months)
	}
	slices.Reverse(months)
	return months
}

// MonthBreakdown is the content of one month in a report.
type MonthBreakdown struct {
	Month string
	// Income holds the month's income, largest first.
	Income []*models.Transaction
	// Expenses holds every expense of the month, largest magnitude first.
	Expenses []*models.Transaction
	// Summary covers all income and expenses, whatever the display limit.
	Summary models.Summary

	topN int
}

// Shown returns the expenses listed individually.
func (b MonthBreakdown) Shown() []*models.Transaction {
	if len(b.Expenses) <= b.topN {
		return b.Expenses
	}
	return b.Expenses[:b.topN]
}

// Hidden returns how many expenses are left out of Shown.
func (b MonthBreakdown) Hidden() int {
	return len(b.Expenses) - len(b.Shown())
}

// BreakdownMonth groups the transactions of month. topN limits Shown; a
// value of zero or less means TopExpenses.
func BreakdownMonth(acc *models.Account, month string, topN int) MonthBreakdown {
	if topN <= 0 {
		topN = TopExpenses
	}

	var inMonth []*models.Transaction
	for i := range acc.Transactions {
		if acc.Transactions[i].Month == month {
			inMonth = append(inMonth, &acc.Transactions[i])
		}
	}
	slices.SortStableFunc(inMonth, models.Compare)

	breakdown := MonthBreakdown{Month: month, topN: topN}
	for _, t := range inMonth {
		switch {
		case t.IsIncome():
			breakdown.Income = append(breakdown.Income, t)
		case t.IsExpense():
			breakdown.Expenses = append(breakdown.Expenses, t)
		}
	}
	slices.Reverse(breakdown.Income)

	summary := models.NewSummary()
	for _, t := range breakdown.Income {
		summary = summary.Record(t)
	}
	for _, t := range breakdown.Expenses {
		summary = summary.Record(t)
	}
	breakdown.Summary = summary

	return breakdown
}

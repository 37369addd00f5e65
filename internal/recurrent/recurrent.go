// Package recurrent finds counterparties an account paid more than once.
package recurrent

import (
	"slices"
	"strings"
	"unicode/utf8"

	"fjacquet/expenses/internal/models"

	"github.com/shopspring/decimal"
)

// MinOccurrences is the number of expenses a counterparty needs to be reported.
const MinOccurrences = 2

// Payment is a group of expenses sharing a counterparty key.
type Payment struct {
	Key string
	// TotalSpent is the sum of the group's amounts, so it is negative.
	TotalSpent decimal.Decimal
	// Indices point into the account's transactions, in file order.
	Indices []int
}

// Transactions resolves the payment's indices against acc, which must be
// the account the payment was detected in.
func (p Payment) Transactions(acc *models.Account) []*models.Transaction {
	list := make([]*models.Transaction, len(p.Indices))
	for i, idx := range p.Indices {
		list[i] = &acc.Transactions[idx]
	}
	return list
}

// Result lists the recurrent payments of an account.
type Result struct {
	// Payments are sorted by TotalSpent ascending, ties by key, so the
	// largest spend comes first.
	Payments []Payment
	// MaxKeyWidth is the longest key in runes plus two; 0 without payments.
	MaxKeyWidth int
}

// Detect groups the expenses of acc by counterparty and keeps the groups
// with at least MinOccurrences members.
func Detect(acc *models.Account) Result {
	groups := make(map[string][]int)
	var keys []string
	for i := range acc.Transactions {
		t := &acc.Transactions[i]
		if !t.IsExpense() {
			continue
		}
		key := t.CounterpartyKey()
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], i)
	}

	var result Result
	for _, key := range keys {
		indices := groups[key]
		if len(indices) < MinOccurrences {
			continue
		}

		total := decimal.Zero
		for _, idx := range indices {
			total = total.Add(acc.Transactions[idx].Amount)
		}
		result.Payments = append(result.Payments, Payment{
			Key:        key,
			TotalSpent: total,
			Indices:    indices,
		})

		if width := utf8.RuneCountInString(key) + 2; width > result.MaxKeyWidth {
			result.MaxKeyWidth = width
		}
	}

	slices.SortFunc(result.Payments, func(a, b Payment) int {
		if c := a.TotalSpent.Cmp(b.TotalSpent); c != 0 {
			return c
		}
		return strings.Compare(a.Key, b.Key)
	})

	return result
}

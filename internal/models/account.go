package models

import "github.com/shopspring/decimal"

// UnknownAccount is used when an export carries no account number.
const UnknownAccount = "Unknown"

// Account is one exported statement: the account number and its transactions
// in file order. It is not modified after parsing.
type Account struct {
	Number       string
	Transactions []Transaction
}

// NewAccount creates an empty account with the given number.
func NewAccount(number string) *Account {
	if number == "" {
		number = UnknownAccount
	}
	return &Account{
		Number:       number,
		Transactions: []Transaction{},
	}
}

// Period returns the entry dates of the first and last transaction in file
// order. ok is false for an account without transactions.
func (a *Account) Period() (first, last string, ok bool) {
	if len(a.Transactions) == 0 {
		return "", "", false
	}
	return a.Transactions[0].EntryDate, a.Transactions[len(a.Transactions)-1].EntryDate, true
}

// Sum adds up the amounts of the transactions matching predicate.
func (a *Account) Sum(predicate func(*Transaction) bool) decimal.Decimal {
	total := decimal.Zero
	for i := range a.Transactions {
		if predicate(&a.Transactions[i]) {
			total = total.Add(a.Transactions[i].Amount)
		}
	}
	return total
}

package models

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tx(date, amount string) Transaction {
	return Transaction{
		EntryDate: date,
		Month:     MonthOf(date),
		Amount:    decimal.RequireFromString(amount),
	}
}

func TestMonthOf(t *testing.T) {
	testCases := []struct {
		name     string
		date     string
		expected string
	}{
		{"FullDate", "14.05.2018", "05.2018"},
		{"FixedPrefixNotParsed", "1.5.2018", ".2018"},
		{"TooShort", "14.", ""},
		{"Empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MonthOf(tc.date))
		})
	}
}

func TestIncomeExpense(t *testing.T) {
	income := tx("01.05.2018", "10")
	expense := tx("01.05.2018", "-10")
	zero := tx("01.05.2018", "0")

	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())
	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsIncome())
	assert.False(t, zero.IsIncome())
	assert.False(t, zero.IsExpense())
}

func TestEqual(t *testing.T) {
	a := tx("02.05.2018", "-2.60")
	b := tx("02.05.2018", "-2.6")
	b.Beneficiary = "someone else"
	c := tx("12.05.2018", "-2.60")

	assert.True(t, a.Equal(&b), "same date and amount are equal regardless of other fields")
	assert.False(t, a.Equal(&c))
}

func TestCompare(t *testing.T) {
	list := []Transaction{
		tx("23.05.2018", "-3.80"),
		tx("14.05.2018", "200"),
		tx("12.05.2018", "-2.60"),
		tx("03.05.2018", "-3.80"),
		tx("02.05.2018", "-8.46"),
		tx("02.05.2018", "-2.60"),
	}

	ptrs := make([]*Transaction, len(list))
	for i := range list {
		ptrs[i] = &list[i]
	}
	slices.SortFunc(ptrs, Compare)

	var got []string
	for _, p := range ptrs {
		got = append(got, p.EntryDate+" "+p.Amount.StringFixed(2))
	}
	assert.Equal(t, []string{
		"02.05.2018 -8.46",
		"03.05.2018 -3.80",
		"23.05.2018 -3.80",
		"02.05.2018 -2.60",
		"12.05.2018 -2.60",
		"14.05.2018 200.00",
	}, got)
}

func TestCompare_DateTieBreakIsLexical(t *testing.T) {
	// 01.06.2018 sorts before 31.05.2018 as strings, although it is later in time.
	june := tx("01.06.2018", "-1")
	may := tx("31.05.2018", "-1")

	assert.Equal(t, -1, Compare(&june, &may))
	assert.Equal(t, 1, Compare(&may, &june))
	assert.Equal(t, 0, Compare(&may, &may))
}

func TestCounterpartyKey(t *testing.T) {
	withBeneficiary := Transaction{Beneficiary: "Iso Tiger Oy", Transaction: "Card purchase"}
	withoutBeneficiary := Transaction{Transaction: "Service fee"}

	assert.Equal(t, "Iso Tiger Oy", withBeneficiary.CounterpartyKey())
	assert.Equal(t, "Service fee", withoutBeneficiary.CounterpartyKey())
}

func TestDisplayMessage(t *testing.T) {
	testCases := []struct {
		name     string
		tx       Transaction
		expected string
	}{
		{
			name:     "AllParts",
			tx:       Transaction{Beneficiary: "Employer", Transaction: "Deposit", Message: "HELSINKI"},
			expected: "Employer - Deposit HELSINKI",
		},
		{
			name:     "InnerSpacingKept",
			tx:       Transaction{Beneficiary: "TWILIO", Transaction: "Card purchase", Message: "USD          10,01 8778894546 KURSSI: 1,1832"},
			expected: "TWILIO - Card purchase USD          10,01 8778894546 KURSSI: 1,1832",
		},
		{
			name:     "NoMessage",
			tx:       Transaction{Beneficiary: "James Bond", Transaction: "Own transfer"},
			expected: "James Bond - Own transfer",
		},
		{
			name:     "BeneficiaryOnly",
			tx:       Transaction{Beneficiary: "James Bond"},
			expected: "James Bond -",
		},
		{
			name:     "NoBeneficiary",
			tx:       Transaction{Transaction: "Service fee", Message: "May  "},
			expected: "Service fee May",
		},
		{
			name:     "Empty",
			tx:       Transaction{},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.tx.DisplayMessage())
		})
	}
}

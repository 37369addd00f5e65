package analysis

import (
	"fmt"
	"testing"

	"fjacquet/expenses/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(date, amount, beneficiary string) models.Transaction {
	return models.Transaction{
		EntryDate:   date,
		Month:       models.MonthOf(date),
		Amount:      decimal.RequireFromString(amount),
		Beneficiary: beneficiary,
		Transaction: "Card purchase",
	}
}

func oneMonthAccount() *models.Account {
	return &models.Account{
		Number: "FI1234567890123456",
		Transactions: []models.Transaction{
			tx("02.05.2018", "-8.46", "TWILIO"),
			tx("02.05.2018", "-2.60", "Iso Tiger Oy"),
			tx("03.05.2018", "-3.80", "RTE Kahvilat Oy"),
			tx("12.05.2018", "-2.60", "Iso Tiger Oy"),
			tx("14.05.2018", "200.00", "Employer"),
			tx("23.05.2018", "-3.80", "RTE Kahvilat Oy"),
		},
	}
}

func dates(list []*models.Transaction) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.EntryDate + " " + t.Amount.StringFixed(2)
	}
	return out
}

func TestAccountSummary(t *testing.T) {
	s := AccountSummary(oneMonthAccount())

	assert.Equal(t, "200.00", s.Income.StringFixed(2))
	assert.Equal(t, "21.26", s.Expenses.StringFixed(2))
	assert.Equal(t, "178.74", s.Profit().StringFixed(2))
}

func TestAccountSummary_Empty(t *testing.T) {
	s := AccountSummary(models.NewAccount("FI00"))

	assert.True(t, s.IsZero())
	assert.True(t, s.Profit().IsZero())
}

func TestMonths(t *testing.T) {
	acc := &models.Account{Transactions: []models.Transaction{
		tx("02.05.2018", "-1", ""),
		tx("15.01.2019", "-1", ""),
		tx("03.12.2018", "-1", ""),
		tx("20.05.2018", "-1", ""),
	}}

	tests := []struct {
		order    MonthOrder
		expected []string
	}{
		// String order puts 12.2018 last, so it is shown first.
		{MonthOrderLexical, []string{"12.2018", "05.2018", "01.2019"}},
		{MonthOrderCalendar, []string{"01.2019", "12.2018", "05.2018"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			assert.Equal(t, tt.expected, Months(acc, tt.order))
		})
	}
}

func TestMonths_Empty(t *testing.T) {
	assert.Empty(t, Months(models.NewAccount("FI00"), MonthOrderLexical))
}

func TestParseMonthOrder(t *testing.T) {
	order, err := ParseMonthOrder("")
	require.NoError(t, err)
	assert.Equal(t, MonthOrderLexical, order)

	order, err = ParseMonthOrder("calendar")
	require.NoError(t, err)
	assert.Equal(t, MonthOrderCalendar, order)

	_, err = ParseMonthOrder("random")
	assert.Error(t, err)
}

func TestBreakdownMonth(t *testing.T) {
	acc := oneMonthAccount()

	b := BreakdownMonth(acc, "05.2018", TopExpenses)

	assert.Equal(t, []string{"14.05.2018 200.00"}, dates(b.Income))
	assert.Equal(t, []string{
		"02.05.2018 -8.46",
		"03.05.2018 -3.80",
		"23.05.2018 -3.80",
		"02.05.2018 -2.60",
		"12.05.2018 -2.60",
	}, dates(b.Expenses))
	assert.Equal(t, b.Expenses, b.Shown())
	assert.Equal(t, 0, b.Hidden())
	assert.Equal(t, "200.00", b.Summary.Income.StringFixed(2))
	assert.Equal(t, "21.26", b.Summary.Expenses.StringFixed(2))

	// Entries point into the account.
	assert.Same(t, &acc.Transactions[4], b.Income[0])
}

func TestBreakdownMonth_IncomeLargestFirst(t *testing.T) {
	acc := &models.Account{Transactions: []models.Transaction{
		tx("01.05.2018", "10", "A"),
		tx("02.05.2018", "300", "B"),
		tx("03.05.2018", "45.5", "C"),
		tx("04.06.2018", "999", "other month"),
		tx("05.05.2018", "0", "zero"),
	}}

	b := BreakdownMonth(acc, "05.2018", 0)

	assert.Equal(t, []string{"02.05.2018 300.00", "03.05.2018 45.50", "01.05.2018 10.00"}, dates(b.Income))
	assert.Empty(t, b.Expenses)
	assert.Equal(t, "355.50", b.Summary.Income.StringFixed(2))
}

func TestBreakdownMonth_TopExpensesDoesNotAffectTotals(t *testing.T) {
	acc := &models.Account{}
	for i := 1; i <= 12; i++ {
		acc.Transactions = append(acc.Transactions, tx(fmt.Sprintf("%02d.05.2018", i), fmt.Sprintf("-%d", i), "Shop"))
	}

	b := BreakdownMonth(acc, "05.2018", TopExpenses)

	require.Len(t, b.Shown(), 10)
	assert.Equal(t, 2, b.Hidden())
	assert.Equal(t, "-12.00", b.Shown()[0].Amount.StringFixed(2))
	assert.Equal(t, "-3.00", b.Shown()[9].Amount.StringFixed(2))
	assert.Equal(t, "78.00", b.Summary.Expenses.StringFixed(2))
}

func TestBreakdownMonth_Properties(t *testing.T) {
	faker := gofakeit.New(42)

	for run := 0; run < 50; run++ {
		acc := &models.Account{}
		n := faker.Number(0, 40)
		for i := 0; i < n; i++ {
			date := fmt.Sprintf("%02d.0%d.2018", faker.Number(1, 28), faker.Number(1, 3))
			amount := decimal.NewFromFloat(faker.Float64Range(-500, 500)).Round(2)
			acc.Transactions = append(acc.Transactions, models.Transaction{
				EntryDate:   date,
				Month:       models.MonthOf(date),
				Amount:      amount,
				Beneficiary: faker.Company(),
			})
		}
		topN := faker.Number(1, 15)

		total := models.NewSummary()
		for _, month := range Months(acc, MonthOrderLexical) {
			b := BreakdownMonth(acc, month, topN)

			assert.LessOrEqual(t, len(b.Shown()), topN)
			assert.Equal(t, len(b.Expenses), len(b.Shown())+b.Hidden())
			for i := 1; i < len(b.Income); i++ {
				assert.True(t, b.Income[i-1].Amount.GreaterThanOrEqual(b.Income[i].Amount))
			}
			for i := 1; i < len(b.Expenses); i++ {
				assert.True(t, b.Expenses[i-1].Amount.LessThanOrEqual(b.Expenses[i].Amount))
			}
			assert.True(t, b.Summary.Profit().Equal(b.Summary.Income.Sub(b.Summary.Expenses)))

			total = total.Add(b.Summary)
		}

		assert.True(t, total.Equal(AccountSummary(acc)), "monthly figures add up to the account summary")
	}
}

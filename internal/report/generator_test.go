package report

import (
	"encoding/json"
	"testing"

	"fjacquet/expenses/internal/analysis"
	"fjacquet/expenses/internal/logging"
	"fjacquet/expenses/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleDocument() *Document {
	ar := BuildAccountReport("statement.txt", oneMonthAccount(), analysis.MonthOrderLexical, analysis.TopExpenses)
	total := NewSummaryView(analysis.AccountSummary(oneMonthAccount()))
	return &Document{Accounts: []AccountReport{ar}, Total: &total}
}

func TestBuildAccountReport(t *testing.T) {
	ar := BuildAccountReport("statement.txt", oneMonthAccount(), analysis.MonthOrderLexical, 3)

	assert.Equal(t, "statement.txt", ar.File)
	assert.Equal(t, "FI1234567890123456", ar.Account)
	assert.Equal(t, 6, ar.Transactions)
	assert.Equal(t, "02.05.2018", ar.PeriodStart)
	assert.Equal(t, "23.05.2018", ar.PeriodEnd)
	assert.Equal(t, SummaryView{Income: "+200.00", Expenses: "-21.26", Profit: "+178.74"}, ar.Summary)

	require.Len(t, ar.Months, 1)
	month := ar.Months[0]
	assert.Equal(t, "05.2018", month.Month)
	assert.Equal(t, []LineView{{Date: "14.05.2018", Amount: "+200.00", Message: "Employer - Deposit HELSINKI"}}, month.Income)
	assert.Len(t, month.Expenses, 3)
	assert.Equal(t, 2, month.HiddenExpenses)
	assert.Equal(t, "-21.26", month.Summary.Expenses)

	require.Len(t, ar.Recurrent, 2)
	assert.Equal(t, RecurrentReport{Key: "RTE Kahvilat Oy", Total: "7.60", Dates: []string{"03.05.2018", "23.05.2018"}}, ar.Recurrent[0])
	assert.Equal(t, "Iso Tiger Oy", ar.Recurrent[1].Key)
}

func TestBuildAccountReport_Empty(t *testing.T) {
	ar := BuildAccountReport("empty.txt", models.NewAccount("FI00"), analysis.MonthOrderLexical, 10)

	assert.Empty(t, ar.PeriodStart)
	assert.NotNil(t, ar.Months)
	assert.NotNil(t, ar.Recurrent)
	assert.Equal(t, "+0.00", ar.Summary.Profit)
}

func TestGenerator_Generate_JSON(t *testing.T) {
	generator := NewGenerator(logging.NewMockLogger())

	data, err := generator.Generate(sampleDocument(), FormatJSON)
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Accounts, 1)
	assert.Equal(t, "FI1234567890123456", decoded.Accounts[0].Account)
	require.NotNil(t, decoded.Total)
	assert.Equal(t, "+178.74", decoded.Total.Profit)
}

func TestGenerator_Generate_YAML(t *testing.T) {
	generator := NewGenerator(nil)

	data, err := generator.Generate(sampleDocument(), FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "account: FI1234567890123456")

	var decoded Document
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "-21.26", decoded.Accounts[0].Summary.Expenses)
	assert.Equal(t, []string{"03.05.2018", "23.05.2018"}, decoded.Accounts[0].Recurrent[0].Dates)
}

func TestGenerator_Generate_UnsupportedFormat(t *testing.T) {
	generator := NewGenerator(logging.NewMockLogger())

	_, err := generator.Generate(sampleDocument(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format: xml")
}

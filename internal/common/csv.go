// Package common provides shared functionality for the command handlers.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/expenses/internal/dateutils"
	"fjacquet/expenses/internal/logging"
	"fjacquet/expenses/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter separates CSV columns unless configured otherwise.
const DefaultDelimiter = ','

// TransactionRow is one exported transaction. Amounts use '.' and two
// decimals whatever the source format.
type TransactionRow struct {
	Account             string `csv:"Account"`
	EntryDate           string `csv:"EntryDate"`
	BookingDate         string `csv:"BookingDate"` // ISO 8601 form of EntryDate
	Month               string `csv:"Month"`
	ValueDate           string `csv:"ValueDate"`
	PaymentDate         string `csv:"PaymentDate"`
	Amount              string `csv:"Amount"`
	Beneficiary         string `csv:"Beneficiary"`
	AccountNumber       string `csv:"AccountNumber"`
	BIC                 string `csv:"BIC"`
	Transaction         string `csv:"Transaction"`
	ReferenceNumber     string `csv:"ReferenceNumber"`
	OriginatorReference string `csv:"OriginatorReference"`
	Message             string `csv:"Message"`
	CardNumber          string `csv:"CardNumber"`
	Receipt             string `csv:"Receipt"`
}

// TransactionRows converts the transactions of acc to export rows, in file order.
func TransactionRows(acc *models.Account) []TransactionRow {
	rows := make([]TransactionRow, 0, len(acc.Transactions))
	for _, t := range acc.Transactions {
		rows = append(rows, TransactionRow{
			Account:             acc.Number,
			EntryDate:           t.EntryDate,
			BookingDate:         dateutils.ToISODate(t.EntryDate),
			Month:               t.Month,
			ValueDate:           t.ValueDate,
			PaymentDate:         t.PaymentDate,
			Amount:              t.Amount.StringFixed(models.DisplayPlaces),
			Beneficiary:         t.Beneficiary,
			AccountNumber:       t.AccountNumber,
			BIC:                 t.BIC,
			Transaction:         t.Transaction,
			ReferenceNumber:     t.ReferenceNumber,
			OriginatorReference: t.OriginatorReference,
			Message:             t.Message,
			CardNumber:          t.CardNumber,
			Receipt:             t.Receipt,
		})
	}
	return rows
}

// CSVWriter writes transaction rows with gocsv.
type CSVWriter struct {
	logger    logging.Logger
	delimiter rune
}

// NewCSVWriter creates a CSVWriter. A zero delimiter means DefaultDelimiter.
func NewCSVWriter(logger logging.Logger, delimiter rune) *CSVWriter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &CSVWriter{logger: logger, delimiter: delimiter}
}

// Write marshals rows, header first, to w.
func (c *CSVWriter) Write(w io.Writer, rows []TransactionRow) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = c.delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		c.logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteFile writes rows to csvFile, creating its directory when needed.
func (c *CSVWriter) WriteFile(csvFile string, rows []TransactionRow) error {
	logger := c.logger.WithFields(
		logging.F(logging.FieldOutputFile, csvFile),
		logging.F(logging.FieldCount, len(rows)),
	)
	logger.Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := c.Write(file, rows); err != nil {
		return err
	}

	logger.Info("Successfully wrote transactions to CSV file")
	return nil
}

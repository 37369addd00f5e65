// Package nordeaparser reads the tab-separated account export produced by
// Nordea online banking.
//
// The first line carries the account number in its second field, the next
// three lines are headers, and every later line with at least 13 fields is a
// transaction. Shorter lines (blank lines, footers) are skipped.
package nordeaparser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/expenses/internal/logging"
	"fjacquet/expenses/internal/models"
	"fjacquet/expenses/internal/parser"
	"fjacquet/expenses/internal/parsererror"
)

const (
	headerLines       = 4
	transactionFields = 13
	maxLineSize       = 1024 * 1024
)

// Column positions of a transaction row.
const (
	colEntryDate = iota
	colValueDate
	colPaymentDate
	colAmount
	colBeneficiary
	colAccountNumber
	colBIC
	colTransaction
	colReferenceNumber
	colOriginatorReference
	colMessage
	colCardNumber
	colReceipt
)

// Parser reads Nordea exports.
type Parser struct {
	parser.BaseParser
	encoding string
}

// NewParser creates a parser reading UTF-8 input.
func NewParser(logger logging.Logger) *Parser {
	return &Parser{
		BaseParser: parser.NewBaseParser(logger),
		encoding:   EncodingUTF8,
	}
}

// SetEncoding selects the character set of the input files.
func (p *Parser) SetEncoding(name string) error {
	if _, err := lookupEncoding(name); err != nil {
		return err
	}
	p.encoding = name
	return nil
}

// Encoding returns the configured input character set.
func (p *Parser) Encoding() string {
	return p.encoding
}

// Parse reads an export from r. "Reading file {name}" is written to out
// before anything is read.
func (p *Parser) Parse(r io.Reader, name string, out io.Writer) (*models.Account, error) {
	if _, err := fmt.Fprintf(out, "Reading file %s\n", name); err != nil {
		return nil, fmt.Errorf("error writing progress: %w", err)
	}

	logger := p.GetLogger().WithFields(
		logging.F(logging.FieldFile, name),
		logging.F(logging.FieldEncoding, p.encoding),
	)

	reader, err := decodingReader(r, p.encoding)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var account *models.Account
	skipped := 0
	lineIndex := 0
	for ; scanner.Scan(); lineIndex++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		switch {
		case lineIndex == 0:
			number, err := accountNumber(line, name)
			if err != nil {
				return nil, err
			}
			account = models.NewAccount(number)
			logger.Debug("Found account number", logging.F(logging.FieldAccount, number))
		case lineIndex < headerLines:
			continue
		default:
			fields := strings.Split(line, "\t")
			if len(fields) < transactionFields {
				skipped++
				logger.Debug("Skipping short row",
					logging.F(logging.FieldLine, lineIndex+1),
					logging.F("fields", len(fields)))
				continue
			}

			tx, err := rowToTransaction(fields)
			if err != nil {
				return nil, &parsererror.ParseError{
					File:  name,
					Line:  lineIndex + 1,
					Field: "amount",
					Value: fields[colAmount],
					Err:   err,
				}
			}
			account.Transactions = append(account.Transactions, tx)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &parsererror.FileError{FilePath: name, Op: "read", Err: err}
	}

	if account == nil {
		return nil, &parsererror.ParseError{
			File:  name,
			Line:  1,
			Field: "account_number",
			Err:   parsererror.ErrMissingAccountNumber,
		}
	}

	logger.Info("Parsed account export",
		logging.F(logging.FieldAccount, account.Number),
		logging.F(logging.FieldCount, len(account.Transactions)),
		logging.F(logging.FieldSkipped, skipped))
	return account, nil
}

// ParseFile opens filePath and parses it; the path is used as the file name.
func (p *Parser) ParseFile(filePath string, out io.Writer) (*models.Account, error) {
	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, &parsererror.FileError{FilePath: filePath, Op: "open", Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.GetLogger().WithError(err).Warn("Failed to close file",
				logging.F(logging.FieldFile, filePath))
		}
	}()

	return p.Parse(file, filePath, out)
}

// ValidateFormat reports whether the first line of filePath carries an
// account number field.
func (p *Parser) ValidateFormat(filePath string) (bool, error) {
	logger := p.GetLogger().WithField(logging.FieldFile, filePath)
	logger.Debug("Validating Nordea export format")

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return false, &parsererror.FileError{FilePath: filePath, Op: "open", Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader, err := decodingReader(file, p.encoding)
	if err != nil {
		return false, err
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, &parsererror.FileError{FilePath: filePath, Op: "read", Err: err}
		}
		logger.Info("File is empty")
		return false, nil
	}

	if _, err := accountNumber(strings.TrimSuffix(scanner.Text(), "\r"), filePath); err != nil {
		logger.Info("First line has no account number")
		return false, nil
	}
	return true, nil
}

func accountNumber(line, name string) (string, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return "", &parsererror.ParseError{
			File:  name,
			Line:  1,
			Field: "account_number",
			Value: line,
			Err:   parsererror.ErrMissingAccountNumber,
		}
	}
	return fields[1], nil
}

func rowToTransaction(fields []string) (models.Transaction, error) {
	amount, err := models.ParseAmount(fields[colAmount])
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", parsererror.ErrInvalidAmount, err)
	}

	return models.Transaction{
		EntryDate:           fields[colEntryDate],
		Month:               models.MonthOf(fields[colEntryDate]),
		ValueDate:           fields[colValueDate],
		PaymentDate:         fields[colPaymentDate],
		Amount:              amount,
		Beneficiary:         fields[colBeneficiary],
		AccountNumber:       fields[colAccountNumber],
		BIC:                 fields[colBIC],
		Transaction:         fields[colTransaction],
		ReferenceNumber:     fields[colReferenceNumber],
		OriginatorReference: fields[colOriginatorReference],
		Message:             fields[colMessage],
		CardNumber:          fields[colCardNumber],
		Receipt:             fields[colReceipt],
	}, nil
}

// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"io"

	internalcommon "fjacquet/expenses/internal/common"
	"fjacquet/expenses/internal/container"
	"fjacquet/expenses/internal/logging"
	"fjacquet/expenses/internal/parsererror"
	"fjacquet/expenses/internal/validation"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// RunReport writes the report of the given export files to out. The text
// format streams each account as it is processed; json and yaml print one
// document at the end.
func RunReport(c *container.Container, out io.Writer, paths []string, format string) error {
	if err := validation.IsValidOutputFormat(format); err != nil {
		return err
	}

	processor, err := c.NewProcessor(out)
	if err != nil {
		return err
	}

	log := c.GetLogger()
	log.Info("Generating report",
		logging.F(logging.FieldFiles, len(paths)),
		logging.F(logging.FieldFormat, format))

	if format == FormatText {
		_, err := processor.ProcessFiles(paths)
		return err
	}

	doc, collectErr := processor.Collect(paths, io.Discard)
	if doc == nil {
		return collectErr
	}

	data, err := c.GetGenerator().Generate(doc, format)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return collectErr
}

// ExportCSV parses the export files and writes all their transactions as
// CSV to outputFile, or to out when outputFile is empty.
func ExportCSV(c *container.Container, out io.Writer, paths []string, outputFile string) error {
	if err := validation.ValidateInputFiles(paths); err != nil {
		return err
	}

	rows := []internalcommon.TransactionRow{}
	for _, path := range paths {
		account, err := c.GetParser().ParseFile(path, io.Discard)
		if err != nil {
			return err
		}
		rows = append(rows, internalcommon.TransactionRows(account)...)
	}

	if outputFile == "" {
		return c.GetCSVWriter().Write(out, rows)
	}
	return c.GetCSVWriter().WriteFile(outputFile, rows)
}

// ValidateFiles checks the header of every file and prints one verdict per
// file to out. Files that are not exports are returned as errors.
func ValidateFiles(c *container.Container, out io.Writer, paths []string) error {
	if err := validation.ValidateInputFiles(paths); err != nil {
		return err
	}

	var errs []error
	for _, path := range paths {
		valid, err := c.GetParser().ValidateFormat(path)
		if err != nil {
			return err
		}

		verdict := "valid"
		if !valid {
			verdict = "invalid"
			errs = append(errs, &parsererror.InvalidFormatError{
				FilePath:       path,
				ExpectedFormat: "Nordea tab-separated export",
				Msg:            "first line has no account number",
			})
		}
		if _, err := fmt.Fprintf(out, "%s: %s\n", path, verdict); err != nil {
			return fmt.Errorf("error writing result: %w", err)
		}
	}
	return errors.Join(errs...)
}

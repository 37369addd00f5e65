package parser

import (
	"io"

	"fjacquet/expenses/internal/models"
)

// Parser reads one account export.
type Parser interface {
	// Parse reads an export from r. name identifies the source in progress
	// output and errors; progress lines are written to out.
	Parse(r io.Reader, name string, out io.Writer) (*models.Account, error)
}

// FileParser is a Parser that can also open files itself.
type FileParser interface {
	Parser
	ParseFile(filePath string, out io.Writer) (*models.Account, error)
}

// Validator checks whether a file looks like the expected export format.
type Validator interface {
	ValidateFormat(filePath string) (bool, error)
}

// FullParser combines all parser capabilities.
type FullParser interface {
	FileParser
	Validator
}

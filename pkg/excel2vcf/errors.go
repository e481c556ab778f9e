package excel2vcf

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/contacts"
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a supported spreadsheet format.
var ErrInvalidFormat = errors.New("unsupported spreadsheet format")

// Errors surfaced by the extraction core and the sheet reader.
var (
	ErrEmptyGrid     = contacts.ErrEmptyGrid
	ErrNoRecords     = contacts.ErrNoRecords
	ErrSheetNotFound = parser.ErrSheetNotFound
)

// ConfigError reports a missing or unresolvable input reference or option.
type ConfigError = contacts.ConfigError

// ExtractionError reports a spreadsheet that could not be opened or a
// sheet whose rows could not be read.
type ExtractionError struct {
	// File is the base name of the spreadsheet.
	File string
	// SheetName is empty when the workbook itself failed to open.
	SheetName string
	Stage     string // "open", "rows"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("%s: %s: %v", e.File, e.Stage, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %s: %v", e.File, e.SheetName, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func readError(path, sheetName string, err error) *ExtractionError {
	return &ExtractionError{File: filepath.Base(path), SheetName: sheetName, Stage: "rows", Err: err}
}

func openError(path string, err error) *ExtractionError {
	return &ExtractionError{File: filepath.Base(path), Stage: "open", Err: err}
}

package excel2vcf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/contacts"
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/models"
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/parser"
	"github.com/xuri/excelize/v2"
)

// Convert reads the selected sheet of the file at path and converts its
// rows into vCards.
//
// When the sheet yields no contacts, the empty result is returned together
// with ErrNoRecords.
func Convert(path string, opts Options) (*contacts.Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	grid, sheetName, err := LoadGrid(path, opts.Sheet())
	if err != nil {
		return nil, err
	}

	res, err := contacts.Extract(grid, opts.Contacts)
	if err != nil && !errors.Is(err, contacts.ErrNoRecords) {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}

	log.Debug().
		Str("file", filepath.Base(path)).
		Str("sheet", sheetName).
		Int("rows", len(grid)).
		Bool("has_header", res.HasHeader).
		Int("phone_col", res.Columns.Phone).
		Int("name_col", res.Columns.Name).
		Int("contacts", res.Count).
		Msg("sheet converted")

	if err != nil {
		return res, fmt.Errorf("sheet %q: %w", sheetName, err)
	}
	return res, nil
}

// LoadGrid reads the sheet selected by sel and returns it with its name.
func LoadGrid(path string, sel parser.SheetSelector) (models.Grid, string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, "", contacts.NewConfigError("file", "no input file given", nil)
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, "", contacts.NewConfigError("file", path, ErrFileNotFound)
		}
		return nil, "", err
	}

	if isCSV(path) {
		name, err := parser.SelectSheet([]string{parser.CSVSheetName}, sel)
		if err != nil {
			return nil, "", contacts.NewConfigError("sheet", sel.String(), err)
		}
		grid, err := readCSVFile(path)
		if err != nil {
			return nil, "", readError(path, name, err)
		}
		return grid, name, nil
	}

	f, err := openWorkbook(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	name, err := parser.ResolveSheet(f, sel)
	if err != nil {
		return nil, "", contacts.NewConfigError("sheet", sel.String(), err)
	}
	grid, err := parser.ReadGrid(f, name)
	if err != nil {
		return nil, "", readError(path, name, err)
	}
	return grid, name, nil
}

// Inspect summarizes how every sheet of the file would be converted with
// inferred settings.
func Inspect(path string) (*models.WorkbookSummary, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, contacts.NewConfigError("file", path, ErrFileNotFound)
		}
		return nil, err
	}

	wb := &models.WorkbookSummary{BookName: filepath.Base(path)}

	if isCSV(path) {
		grid, err := readCSVFile(path)
		if err != nil {
			return nil, readError(path, parser.CSVSheetName, err)
		}
		wb.Sheets = append(wb.Sheets, summarize(0, parser.CSVSheetName, grid))
		return wb, nil
	}

	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	for idx, name := range f.GetSheetList() {
		grid, err := parser.ReadGrid(f, name)
		if err != nil {
			return nil, readError(path, name, err)
		}
		wb.Sheets = append(wb.Sheets, summarize(idx, name, grid))
	}
	return wb, nil
}

func summarize(idx int, name string, grid models.Grid) models.SheetSummary {
	summary := models.SheetSummary{
		Index:     idx,
		Name:      name,
		Rows:      len(grid),
		DataRange: parser.DataRange(grid),
	}
	res, err := contacts.Extract(grid, contacts.Config{})
	if res != nil {
		summary.HasHeader = res.HasHeader
		summary.Columns = res.Columns
		summary.Contacts = res.Count
	}
	if err != nil {
		log.Debug().Str("sheet", name).Err(err).Msg("sheet yields no contacts")
	}
	return summary
}

func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}

func openWorkbook(path string) (*excelize.File, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, filepath.Ext(path))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, openError(path, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	return f, nil
}

func readCSVFile(path string) (models.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.ReadCSV(f)
}

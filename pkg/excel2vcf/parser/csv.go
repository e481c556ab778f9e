package parser

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/models"
)

// CSVSheetName is the single sheet name exposed for CSV input.
const CSVSheetName = "Sheet1"

// ReadCSV reads a comma or semicolon separated file into a grid.
// The delimiter is taken from the first line: semicolon wins when it
// appears more often than comma.
func ReadCSV(r io.Reader) (models.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := strings.TrimPrefix(string(data), "\ufeff")

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return models.NewGrid(rows), nil
}

func sniffDelimiter(text string) rune {
	first, _, _ := strings.Cut(text, "\n")
	if strings.Count(first, ";") > strings.Count(first, ",") {
		return ';'
	}
	return ','
}

package contacts

import (
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/models"
)

// Config controls a single extraction run. Nil fields are inferred.
type Config struct {
	// HasHeader forces header handling of the first row. If nil, the first
	// row is classified with IsHeaderRow.
	HasHeader *bool
	// PhoneColumn is the zero-based phone column. If nil, it is detected
	// from the header or defaults to 1.
	PhoneColumn *int
	// NameColumn is the zero-based name column. If nil, it is detected
	// from the header or defaults to 2.
	NameColumn *int
	// DialCode is prefixed to numbers without a leading "+". Empty disables it.
	DialCode string
}

// Validate checks explicit column indices.
func (c Config) Validate() error {
	if c.PhoneColumn != nil && *c.PhoneColumn < 0 {
		return NewConfigError("phone column", "must be a non-negative index", nil)
	}
	if c.NameColumn != nil && *c.NameColumn < 0 {
		return NewConfigError("name column", "must be a non-negative index", nil)
	}
	return nil
}

// Result is the output of an extraction run.
type Result struct {
	// Cards holds one CRLF-terminated vCard block per produced contact.
	Cards []string
	// Count is len(Cards).
	Count int
	// HasHeader reports whether the first row was treated as a header.
	HasHeader bool
	// Columns is the column layout used for the data rows.
	Columns models.ColumnSpec
}

// Extract converts every data row of grid into a vCard.
//
// It returns ErrEmptyGrid for a grid without rows. When every row is
// skipped, the (empty) result is returned together with ErrNoRecords.
func Extract(grid models.Grid, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}

	res := &Result{}
	res.HasHeader, res.Columns = resolveLayout(grid[0], cfg)

	start := 0
	if res.HasHeader {
		start = 1
	}
	for _, row := range grid[start:] {
		phone := NormalizePhone(row.Cell(res.Columns.Phone), cfg.DialCode)
		card := EncodeVCard(row.Cell(res.Columns.Name), phone)
		if card == "" {
			continue
		}
		res.Cards = append(res.Cards, card)
		res.Count++
	}

	if res.Count == 0 {
		return res, ErrNoRecords
	}
	return res, nil
}

// Layout resolves header presence and column positions for a grid without
// converting any row.
func Layout(grid models.Grid, cfg Config) (bool, models.ColumnSpec, error) {
	if err := cfg.Validate(); err != nil {
		return false, models.ColumnSpec{}, err
	}
	if len(grid) == 0 {
		return false, models.ColumnSpec{}, ErrEmptyGrid
	}
	hasHeader, cols := resolveLayout(grid[0], cfg)
	return hasHeader, cols, nil
}

func resolveLayout(first models.Row, cfg Config) (bool, models.ColumnSpec) {
	phoneCol, nameCol := cfg.PhoneColumn, cfg.NameColumn

	var hasHeader bool
	if cfg.HasHeader != nil {
		hasHeader = *cfg.HasHeader
	} else {
		phoneGuess, nameGuess := phoneCol, nameCol
		// Keyword guesses count only when both columns were found.
		if det := DetectColumns(first); det.complete() {
			phoneGuess = firstSet(phoneGuess, det.Phone)
			nameGuess = firstSet(nameGuess, det.Name)
		}
		hasHeader = IsHeaderRow(first, phoneGuess, nameGuess)
	}

	if hasHeader && (phoneCol == nil || nameCol == nil) {
		det := DetectColumns(first)
		phoneCol = firstSet(phoneCol, det.Phone)
		nameCol = firstSet(nameCol, det.Name)
	}

	return hasHeader, models.ColumnSpec{
		Phone: orDefault(phoneCol, models.DefaultPhoneColumn),
		Name:  orDefault(nameCol, models.DefaultNameColumn),
	}
}

func firstSet(vals ...*int) *int {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

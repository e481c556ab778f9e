// Package models defines the value types shared by the spreadsheet reader
// and the contact extraction core.
package models

// Default column positions used when neither the caller nor the header
// detection provides one (zero-based).
const (
	DefaultPhoneColumn = 1
	DefaultNameColumn  = 2
)

// Row is an ordered sequence of cell values. Rows may be ragged.
type Row []string

// Cell returns the value at the zero-based column index, or "" when the
// index falls outside the row.
func (r Row) Cell(idx int) string {
	if idx < 0 || idx >= len(r) {
		return ""
	}
	return r[idx]
}

// Grid is an ordered sequence of rows read from a single sheet.
type Grid []Row

// NewGrid converts raw rows as returned by a spreadsheet reader into a Grid.
func NewGrid(rows [][]string) Grid {
	grid := make(Grid, len(rows))
	for i, row := range rows {
		grid[i] = Row(row)
	}
	return grid
}

// ColumnSpec holds resolved zero-based column indices.
type ColumnSpec struct {
	// Phone is the column holding phone numbers.
	Phone int `json:"phone_col"`
	// Name is the column holding contact names.
	Name int `json:"name_col"`
}

// DefaultColumns returns the fallback column layout.
func DefaultColumns() ColumnSpec {
	return ColumnSpec{Phone: DefaultPhoneColumn, Name: DefaultNameColumn}
}

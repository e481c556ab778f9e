package models

// SheetSummary describes how a sheet would be interpreted by a conversion
// run with no explicit column or header options.
type SheetSummary struct {
	// Index is the zero-based position of the sheet in the workbook.
	Index int `json:"index"`
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows is the number of rows read from the sheet.
	Rows int `json:"rows"`
	// DataRange is the bounding range of non-empty cells (e.g., "A1:C20").
	DataRange string `json:"data_range,omitempty"`
	// HasHeader reports whether the first row was classified as a header.
	HasHeader bool `json:"has_header"`
	// Columns is the resolved phone/name layout.
	Columns ColumnSpec `json:"columns"`
	// Contacts is the number of vCards the sheet would produce.
	Contacts int `json:"contacts"`
}

package models

// WorkbookSummary represents a workbook-level container with per-sheet summaries.
type WorkbookSummary struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the sheets in workbook order.
	Sheets []SheetSummary `json:"sheets"`
}

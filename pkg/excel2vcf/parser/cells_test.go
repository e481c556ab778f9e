package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadGrid(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Nombre")
	f.SetCellValue(sheetName, "B1", "Teléfono")
	f.SetCellValue(sheetName, "A2", "Ana")
	f.SetCellValue(sheetName, "B2", 612345678)
	f.SetCellValue(sheetName, "B3", "+34 611 222 333")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	grid, err := ReadGrid(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}

	if len(grid) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(grid))
	}
	if grid[0].Cell(1) != "Teléfono" {
		t.Errorf("Expected 'Teléfono', got %q", grid[0].Cell(1))
	}
	if grid[1].Cell(1) != "612345678" {
		t.Errorf("Expected '612345678', got %q", grid[1].Cell(1))
	}
	// A1-style gaps come back as empty cells.
	if grid[2].Cell(0) != "" {
		t.Errorf("Expected empty A3, got %q", grid[2].Cell(0))
	}
	if grid[2].Cell(1) != "+34 611 222 333" {
		t.Errorf("Expected '+34 611 222 333', got %q", grid[2].Cell(1))
	}
}

func TestReadGridUnknownSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ReadGrid(f, "Missing"); err == nil {
		t.Errorf("Expected error for missing sheet")
	}
}

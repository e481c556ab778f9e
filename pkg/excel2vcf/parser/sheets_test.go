package parser

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestSelectSheet(t *testing.T) {
	sheets := []string{"Clientes", "Proveedores", "Notas"}
	one, five, neg := 1, 5, -1

	tests := []struct {
		sel      SheetSelector
		expected string
		wantErr  bool
	}{
		{SheetSelector{}, "Clientes", false},
		{SheetSelector{Index: &one}, "Proveedores", false},
		{SheetSelector{Name: "Notas"}, "Notas", false},
		{SheetSelector{Name: "Notas", Index: &one}, "Notas", false},
		{SheetSelector{Name: "Otros"}, "", true},
		{SheetSelector{Index: &five}, "", true},
		{SheetSelector{Index: &neg}, "", true},
	}

	for _, tt := range tests {
		result, err := SelectSheet(sheets, tt.sel)
		if tt.wantErr {
			if !errors.Is(err, ErrSheetNotFound) {
				t.Errorf("SelectSheet(%s) error = %v, expected ErrSheetNotFound", tt.sel, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("SelectSheet(%s) unexpected error: %v", tt.sel, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("SelectSheet(%s) = %q, expected %q", tt.sel, result, tt.expected)
		}
	}

	if _, err := SelectSheet(nil, SheetSelector{}); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound for empty workbook, got %v", err)
	}
}

func TestResolveSheetWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("Contactos"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}

	idx := 1
	name, err := ResolveSheet(f, SheetSelector{Index: &idx})
	if err != nil {
		t.Fatalf("ResolveSheet failed: %v", err)
	}
	if name != "Contactos" {
		t.Errorf("Expected 'Contactos', got %q", name)
	}
}

package parser

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// SheetSelector identifies a sheet by name or zero-based index.
// A non-empty Name takes priority over Index. When both are unset the
// first sheet is used.
type SheetSelector struct {
	Name  string
	Index *int
}

// String describes the selector for error messages.
func (s SheetSelector) String() string {
	switch {
	case s.Name != "":
		return fmt.Sprintf("%q", s.Name)
	case s.Index != nil:
		return fmt.Sprintf("#%d", *s.Index)
	default:
		return "first sheet"
	}
}

// ResolveSheet returns the sheet name selected by sel.
func ResolveSheet(f *excelize.File, sel SheetSelector) (string, error) {
	return SelectSheet(f.GetSheetList(), sel)
}

// SelectSheet picks a sheet name from an ordered list of sheet names.
func SelectSheet(sheets []string, sel SheetSelector) (string, error) {
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
	}

	if sel.Name != "" {
		for _, name := range sheets {
			if name == sel.Name {
				return name, nil
			}
		}
		return "", fmt.Errorf("%w: %s", ErrSheetNotFound, sel)
	}

	idx := 0
	if sel.Index != nil {
		idx = *sel.Index
	}
	if idx < 0 || idx >= len(sheets) {
		return "", fmt.Errorf("%w: %s (workbook has %d sheets)", ErrSheetNotFound, sel, len(sheets))
	}
	return sheets[idx], nil
}

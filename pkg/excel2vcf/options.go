// Package excel2vcf converts spreadsheet contact lists into vCard files.
package excel2vcf

import (
	"strings"

	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/contacts"
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/parser"
)

// Options configures a conversion run.
type Options struct {
	// SheetName selects a sheet by name. It takes priority over SheetIndex.
	SheetName string
	// SheetIndex selects a sheet by zero-based position.
	// If nil and SheetName is empty, the first sheet is used.
	SheetIndex *int
	// Contacts controls header handling, column layout and dial code.
	Contacts contacts.Config
}

// DefaultOptions returns options that infer everything from the first sheet.
func DefaultOptions() Options {
	return Options{}
}

// Sheet returns the sheet selector for the parser.
func (o Options) Sheet() parser.SheetSelector {
	return parser.SheetSelector{Name: o.SheetName, Index: o.SheetIndex}
}

// Validate checks the options before any file is opened.
func (o Options) Validate() error {
	if o.SheetIndex != nil && *o.SheetIndex < 0 {
		return contacts.NewConfigError("sheet index", "must be a non-negative index", nil)
	}
	return o.Contacts.Validate()
}

// Bool returns a pointer to v, for optional boolean options.
func Bool(v bool) *bool {
	return &v
}

// Int returns a pointer to v, for optional index options.
func Int(v int) *int {
	return &v
}

// ParseTristate converts user text into an optional boolean.
// Empty text is unset; true/false, yes/no, si/no, 1/0 are accepted in any case.
func ParseTristate(field, s string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return nil, nil
	case "true", "yes", "y", "si", "sí", "1":
		return Bool(true), nil
	case "false", "no", "n", "0":
		return Bool(false), nil
	default:
		return nil, contacts.NewConfigError(field, "expected true or false, got "+s, nil)
	}
}

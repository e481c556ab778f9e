// Package contacts turns a spreadsheet grid into vCard 3.0 records.
//
// The package holds the detection heuristics (header row, phone and name
// columns), phone normalization and vCard encoding. It performs no I/O and
// keeps no state between calls.
package contacts

import "regexp"

// PhoneKeywords are matched (as substrings) against normalized header cells
// to locate the phone column.
var PhoneKeywords = []string{
	"tel",
	"telefono",
	"phone",
	"mobile",
	"cel",
	"celular",
	"whatsapp",
	"movil",
}

// NameKeywords are matched (as substrings) against normalized header cells
// to locate the name column.
var NameKeywords = []string{
	"nombre",
	"name",
	"contacto",
	"fullname",
	"full name",
	"fn",
}

var (
	// phoneSeparator splits a cell holding several numbers. Only the first
	// segment is kept.
	phoneSeparator = regexp.MustCompile(`(?i)[;,/]| y | o `)

	// nonDigit matches everything that is stripped from a phone number.
	nonDigit = regexp.MustCompile(`\D`)

	// phonePattern matches text made only of phone punctuation and digits.
	phonePattern = regexp.MustCompile(`^\+?[\d\s().-]+$`)

	// digitPattern requires at least one digit.
	digitPattern = regexp.MustCompile(`\d`)

	// namePattern requires at least one Latin letter, including Spanish
	// accented letters.
	namePattern = regexp.MustCompile(`[A-Za-zÁÉÍÓÚÜÑáéíóúüñ]`)
)

package contacts

import (
	"strings"
	"unicode"

	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Detection is the outcome of header keyword matching. A nil index means no
// header cell matched that category.
type Detection struct {
	Phone *int
	Name  *int
}

// complete reports whether both categories matched, on different columns.
func (d Detection) complete() bool {
	return d.Phone != nil && d.Name != nil && *d.Phone != *d.Name
}

// DetectColumns scans a header row left to right and returns the first
// column matching a phone keyword and the first matching a name keyword.
func DetectColumns(header models.Row) Detection {
	var det Detection
	for idx, cell := range header {
		text := normalizeHeader(cell)
		if text == "" {
			continue
		}
		if det.Phone == nil && containsAny(text, PhoneKeywords) {
			det.Phone = intPtr(idx)
		}
		if det.Name == nil && containsAny(text, NameKeywords) {
			det.Name = intPtr(idx)
		}
	}
	return det
}

// normalizeHeader lowercases s, collapses runs of whitespace and strips
// diacritics ("Teléfono  Móvil" -> "telefono movil").
func normalizeHeader(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func intPtr(v int) *int {
	return &v
}

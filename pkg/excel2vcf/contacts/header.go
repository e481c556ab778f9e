package contacts

import (
	"strings"

	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/models"
)

// LooksLikePhone reports whether s is made only of phone characters
// (optional leading "+", digits, spaces, parentheses, periods, hyphens)
// and holds at least one digit.
func LooksLikePhone(s string) bool {
	t := strings.TrimSpace(s)
	return phonePattern.MatchString(t) && digitPattern.MatchString(t)
}

// LooksLikeName reports whether s contains at least one Latin letter.
func LooksLikeName(s string) bool {
	return namePattern.MatchString(s)
}

// IsHeaderRow guesses whether row is a header: the phone cell must not look
// like a phone number while the name cell looks like a name. Nil guesses
// fall back to the default column positions.
func IsHeaderRow(row models.Row, phoneGuess, nameGuess *int) bool {
	phone := strings.TrimSpace(row.Cell(orDefault(phoneGuess, models.DefaultPhoneColumn)))
	name := strings.TrimSpace(row.Cell(orDefault(nameGuess, models.DefaultNameColumn)))
	return !LooksLikePhone(phone) && LooksLikeName(name)
}

func orDefault(idx *int, def int) int {
	if idx == nil {
		return def
	}
	return *idx
}

package contacts

import "strings"

// NormalizePhone converts raw cell text into a dialable phone string.
//
// The result is empty, a run of digits, or "+" followed by digits. When the
// cell holds several numbers only the first one is kept. Numbers written
// with a leading "+" are already international and ignore dialCode;
// otherwise a non-empty dialCode is prefixed unless the digits already start
// with it. Malformed input yields "".
func NormalizePhone(raw, dialCode string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = strings.TrimSpace(phoneSeparator.Split(s, 2)[0])
	hadPlus := strings.HasPrefix(s, "+")

	digits := digitsOnly(s)
	if digits == "" {
		return ""
	}
	if hadPlus {
		return "+" + digits
	}

	dcDigits := digitsOnly(dialCode)
	if dcDigits == "" {
		return digits
	}
	// A number that already carries the country code is not prefixed twice.
	return "+" + dcDigits + strings.TrimPrefix(digits, dcDigits)
}

func digitsOnly(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

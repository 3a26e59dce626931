package utils

import (
	"errors"
	"strings"
	"unicode"
)

var ErrInvalidPhone = errors.New("telefon numarasi 10 veya 11 haneli olmali")

// NormalizePhone strips separators and validates length. Accepts
// "0555 123 45 67", "(0555) 123-4567" and the like; returns digits only.
func NormalizePhone(phone string) (string, error) {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) != 10 && len(digits) != 11 {
		return "", ErrInvalidPhone
	}
	return digits, nil
}

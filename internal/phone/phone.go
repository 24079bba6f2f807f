// Package phone normalizes attendee phone numbers to E.164.
package phone

import (
	"strings"

	apperrors "github.com/event-ops/coffee-orders/pkg/util"
)

// E.164 allows at most 15 digits; anything under 10 cannot be a full
// local number plus country code in the regions this event serves.
const (
	minDigits = 10
	maxDigits = 15
)

// Normalize converts a free-form phone string to E.164 using the default
// country code for bare local numbers. Inputs whose digit count falls
// outside [10, 15] fail with INVALID_PHONE.
func Normalize(raw, defaultCountryCode string) (string, error) {
	digits := stripNonDigits(raw)
	if len(digits) < minDigits || len(digits) > maxDigits {
		return "", apperrors.NewInvalidPhone("phone number cannot be normalized")
	}

	if strings.HasPrefix(digits, defaultCountryCode) && len(digits) > minDigits {
		return "+" + digits, nil
	}
	if len(digits) == minDigits {
		return "+" + defaultCountryCode + digits, nil
	}
	return "+" + digits, nil
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

package utils

import "strings"

// NormalizePhone cleans a customer phone number into E.164-like form.
// Numbers without a leading "+" are assumed local: a leading "0" is dropped
// and the default dial code (e.g. "+254") is prefixed. Numbers that already
// carry "+" pass through with separators stripped.
func NormalizePhone(raw, defaultDialCode string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	hasPlus := strings.HasPrefix(s, "+")
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}

	if hasPlus {
		return "+" + digits
	}
	digits = strings.TrimPrefix(digits, "0")
	return defaultDialCode + digits
}

// SplitName splits a full name into first and last. A single token becomes
// the first name with an empty last name; extra tokens fold into the last.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(strings.TrimSpace(full))
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

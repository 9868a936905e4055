package text

import "unicode"

// Character classification predicates. Each requires every character of s
// to satisfy the class, and the empty string is always false.

// IsAlpha reports whether s is non-empty and entirely alphabetic.
func IsAlpha(s string) bool {
	return allRunes(s, unicode.IsLetter)
}

// IsAlnum reports whether s is non-empty and entirely letters or digits.
func IsAlnum(s string) bool {
	return allRunes(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

// IsDigit reports whether s is non-empty and entirely ASCII decimal digits.
func IsDigit(s string) bool {
	return allRunes(s, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
}

// IsSpace reports whether s is non-empty and entirely ASCII whitespace.
func IsSpace(s string) bool {
	return allRunes(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// IsUpper reports whether s is non-empty and entirely uppercase letters.
func IsUpper(s string) bool {
	return allRunes(s, unicode.IsUpper)
}

// IsLower reports whether s is non-empty and entirely lowercase letters.
func IsLower(s string) bool {
	return allRunes(s, unicode.IsLower)
}

func allRunes(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}
